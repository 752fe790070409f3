package transaction

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var _ ITransactionTable = (*Table)(nil)

// Table runs transaction queries through a bob executor.
type Table struct {
	exec bob.Executor
}

func NewTable(exec bob.Executor) *Table {
	return &Table{exec: exec}
}

// Insert appends one immutable row. A primary key collision is reported as
// ErrConflict.
func (t *Table) Insert(ctx context.Context, create *TransactionCreate) error {
	query := psql.Insert(
		im.Into("transactions", "id", "session_id", "title", "amount"),
		im.Values(psql.Arg(create.ID, create.SessionID, create.Title, create.Amount)),
	)

	_, err := bob.Exec(ctx, t.exec, query)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return fmt.Errorf("%w: %s", ErrConflict, create.ID)
		}
		return err
	}
	return nil
}

// ListBySession returns every row belonging to the session, oldest first.
// The result may be empty.
func (t *Table) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]*Transaction, error) {
	query := psql.Select(
		sm.Columns("id", "session_id", "title", "amount", "created_at"),
		sm.From("transactions"),
		sm.Where(psql.Quote("session_id").EQ(psql.Arg(sessionID))),
		sm.OrderBy("created_at").Asc(),
	)

	return bob.All(ctx, t.exec, query, scan.StructMapper[*Transaction]())
}

// FindByIDAndSession returns at most one row. A miss, whether the id does not
// exist or belongs to another session, yields (nil, nil).
func (t *Table) FindByIDAndSession(ctx context.Context, id uuid.UUID, sessionID uuid.UUID) (*Transaction, error) {
	query := psql.Select(
		sm.Columns("id", "session_id", "title", "amount", "created_at"),
		sm.From("transactions"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("session_id").EQ(psql.Arg(sessionID))),
	)

	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[*Transaction]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return row, nil
}

// SumAmountBySession returns the signed sum of amounts for the session, and
// exact zero when no rows match.
func (t *Table) SumAmountBySession(ctx context.Context, sessionID uuid.UUID) (decimal.Decimal, error) {
	query := psql.Select(
		sm.Columns(psql.Raw("coalesce(sum(amount), 0)")),
		sm.From("transactions"),
		sm.Where(psql.Quote("session_id").EQ(psql.Arg(sessionID))),
	)

	total, err := bob.One(ctx, t.exec, query, scan.SingleColumnMapper[decimal.Decimal])
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

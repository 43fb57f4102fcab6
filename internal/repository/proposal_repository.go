package repository

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/propelhq/propel-be/internal/domain"
)

type ProposalFilter struct {
	ClientID int64
	Status   domain.ProposalStatus
}

type ProposalRepository interface {
	Create(ctx context.Context, proposal *domain.Proposal) error
	GetByID(ctx context.Context, id int64) (*domain.Proposal, error)
	List(ctx context.Context, filter ProposalFilter) ([]domain.Proposal, error)
	Update(ctx context.Context, proposal *domain.Proposal) error
	Delete(ctx context.Context, id int64) (bool, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ProposalStatus) error
	CountByClientID(ctx context.Context, clientID int64) (int64, error)
	CountByTemplateID(ctx context.Context, templateID int64) (int64, error)
	Recent(ctx context.Context, limit int) ([]domain.RecentProposal, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
}

type proposalRepository struct {
	db *sqlx.DB
}

func NewProposalRepository(db *sqlx.DB) ProposalRepository {
	return &proposalRepository{db: db}
}

func (r *proposalRepository) Create(ctx context.Context, proposal *domain.Proposal) error {
	query := `
		INSERT INTO proposals (title, client_id, template_id, status, amount, content)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		proposal.Title, proposal.ClientID, proposal.TemplateID,
		proposal.Status, proposal.Amount, proposal.Content,
	).Scan(&proposal.ID, &proposal.CreatedAt, &proposal.UpdatedAt)
}

func (r *proposalRepository) GetByID(ctx context.Context, id int64) (*domain.Proposal, error) {
	var proposal domain.Proposal
	query := `SELECT * FROM proposals WHERE id = $1`

	err := r.db.GetContext(ctx, &proposal, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &proposal, nil
}

func (r *proposalRepository) List(ctx context.Context, filter ProposalFilter) ([]domain.Proposal, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	builder := psql.
		Select("id", "title", "client_id", "template_id", "status", "amount", "content", "created_at", "updated_at").
		From("proposals").
		OrderBy("created_at DESC")

	if filter.ClientID > 0 {
		builder = builder.Where(sq.Eq{"client_id": filter.ClientID})
	}
	if filter.Status != "" {
		builder = builder.Where(sq.Eq{"status": filter.Status})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	proposals := []domain.Proposal{}
	err = r.db.SelectContext(ctx, &proposals, query, args...)
	return proposals, err
}

func (r *proposalRepository) Update(ctx context.Context, proposal *domain.Proposal) error {
	query := `
		UPDATE proposals
		SET title = $2, client_id = $3, template_id = $4, status = $5,
			amount = $6, content = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	return r.db.QueryRowxContext(ctx, query,
		proposal.ID, proposal.Title, proposal.ClientID, proposal.TemplateID,
		proposal.Status, proposal.Amount, proposal.Content,
	).Scan(&proposal.UpdatedAt)
}

func (r *proposalRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM proposals WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *proposalRepository) UpdateStatus(ctx context.Context, id int64, status domain.ProposalStatus) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE proposals SET status = $2, updated_at = NOW() WHERE id = $1`,
		id, status)
	return err
}

func (r *proposalRepository) CountByClientID(ctx context.Context, clientID int64) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM proposals WHERE client_id = $1`, clientID)
	return count, err
}

func (r *proposalRepository) CountByTemplateID(ctx context.Context, templateID int64) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM proposals WHERE template_id = $1`, templateID)
	return count, err
}

func (r *proposalRepository) Recent(ctx context.Context, limit int) ([]domain.RecentProposal, error) {
	recent := []domain.RecentProposal{}
	query := `
		SELECT p.id, p.title, p.status, p.amount, c.company_name
		FROM proposals p
		JOIN clients c ON p.client_id = c.id
		ORDER BY p.created_at DESC
		LIMIT $1`

	err := r.db.SelectContext(ctx, &recent, query, limit)
	return recent, err
}

func (r *proposalRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	rows, err := r.db.QueryxContext(ctx,
		`SELECT status, COUNT(*) FROM proposals GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[string]int64{}
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

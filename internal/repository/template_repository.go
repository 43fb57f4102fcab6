package repository

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/propelhq/propel-be/internal/domain"
)

type TemplateRepository interface {
	Create(ctx context.Context, template *domain.Template) error
	GetByID(ctx context.Context, id int64) (*domain.Template, error)
	List(ctx context.Context, category string) ([]domain.Template, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type templateRepository struct {
	db *sqlx.DB
}

func NewTemplateRepository(db *sqlx.DB) TemplateRepository {
	return &templateRepository{db: db}
}

func (r *templateRepository) Create(ctx context.Context, template *domain.Template) error {
	query := `
		INSERT INTO templates (name, description, category, content, is_default)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	return r.db.QueryRowxContext(ctx, query,
		template.Name, template.Description, template.Category,
		template.Content, template.IsDefault,
	).Scan(&template.ID)
}

func (r *templateRepository) GetByID(ctx context.Context, id int64) (*domain.Template, error) {
	var template domain.Template
	query := `SELECT * FROM templates WHERE id = $1`

	err := r.db.GetContext(ctx, &template, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &template, nil
}

func (r *templateRepository) List(ctx context.Context, category string) ([]domain.Template, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	builder := psql.
		Select("id", "name", "description", "category", "content", "is_default").
		From("templates").
		OrderBy("id")

	if category != "" {
		builder = builder.Where(sq.Eq{"category": category})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	templates := []domain.Template{}
	err = r.db.SelectContext(ctx, &templates, query, args...)
	return templates, err
}

func (r *templateRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM templates WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

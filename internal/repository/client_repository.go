package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/propelhq/propel-be/internal/domain"
)

type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
	GetAll(ctx context.Context) ([]domain.Client, error)
	Update(ctx context.Context, client *domain.Client) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type clientRepository struct {
	db *sqlx.DB
}

func NewClientRepository(db *sqlx.DB) ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) Create(ctx context.Context, client *domain.Client) error {
	query := `
		INSERT INTO clients (company_name, industry, address, city, state,
			postal_code, contact_name, contact_title, email, phone, crm_source, crm_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`

	return r.db.QueryRowxContext(ctx, query,
		client.CompanyName, client.Industry, client.Address, client.City,
		client.State, client.PostalCode, client.ContactName, client.ContactTitle,
		client.Email, client.Phone, client.CRMSource, client.CRMID,
	).Scan(&client.ID)
}

func (r *clientRepository) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	var client domain.Client
	query := `SELECT * FROM clients WHERE id = $1`

	err := r.db.GetContext(ctx, &client, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *clientRepository) GetAll(ctx context.Context) ([]domain.Client, error) {
	clients := []domain.Client{}
	query := `SELECT * FROM clients ORDER BY id`

	err := r.db.SelectContext(ctx, &clients, query)
	return clients, err
}

func (r *clientRepository) Update(ctx context.Context, client *domain.Client) error {
	query := `
		UPDATE clients
		SET company_name = $2, industry = $3, address = $4, city = $5,
			state = $6, postal_code = $7, contact_name = $8, contact_title = $9,
			email = $10, phone = $11
		WHERE id = $1`

	_, err := r.db.ExecContext(ctx, query,
		client.ID, client.CompanyName, client.Industry, client.Address,
		client.City, client.State, client.PostalCode, client.ContactName,
		client.ContactTitle, client.Email, client.Phone,
	)
	return err
}

func (r *clientRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

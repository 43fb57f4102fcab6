package repository

import (
	"context"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propelhq/propel-be/internal/domain"
)

var proposalColumns = []string{
	"id", "title", "client_id", "template_id", "status", "amount",
	"content", "created_at", "updated_at",
}

func proposalRow(id int64, title string, status string, createdAt time.Time) []driver.Value {
	return []driver.Value{id, title, int64(9), int64(3), status, nil, []byte(`{}`), createdAt, createdAt}
}

func TestProposalRepository_Create(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	repo := &proposalRepository{db: db}
	now := time.Now().Truncate(time.Second)

	proposal := &domain.Proposal{
		Title:      "Cloud Migration Phase 1",
		ClientID:   9,
		TemplateID: 3,
		Status:     domain.StatusDraft,
		Content:    &domain.ProposalContent{Sections: map[string]string{"Executive Summary": "text"}},
	}

	mock.ExpectQuery(`INSERT INTO proposals`).
		WithArgs("Cloud Migration Phase 1", int64(9), int64(3), "draft", nil, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(42), now, now))

	err := repo.Create(context.Background(), proposal)

	require.NoError(t, err)
	assert.Equal(t, int64(42), proposal.ID)
	assert.Equal(t, now, proposal.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProposalRepository_List_Filters(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	repo := &proposalRepository{db: db}
	now := time.Now().Truncate(time.Second)

	t.Run("unfiltered", func(t *testing.T) {
		rows := sqlmock.NewRows(proposalColumns).
			AddRow(proposalRow(42, "Cloud Migration Phase 1", "draft", now)...)
		mock.ExpectQuery(`SELECT id, title, client_id, template_id, status, amount, content, created_at, updated_at FROM proposals ORDER BY created_at DESC`).
			WillReturnRows(rows)

		proposals, err := repo.List(context.Background(), ProposalFilter{})

		require.NoError(t, err)
		require.Len(t, proposals, 1)
		assert.Equal(t, "Cloud Migration Phase 1", proposals[0].Title)
	})

	t.Run("client and status filters become placeholders", func(t *testing.T) {
		mock.ExpectQuery(`FROM proposals WHERE client_id = \$1 AND status = \$2 ORDER BY created_at DESC`).
			WithArgs(int64(9), "sent").
			WillReturnRows(sqlmock.NewRows(proposalColumns))

		proposals, err := repo.List(context.Background(), ProposalFilter{ClientID: 9, Status: domain.StatusSent})

		require.NoError(t, err)
		assert.Empty(t, proposals)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProposalRepository_Update_RefreshesTimestamp(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	repo := &proposalRepository{db: db}
	updatedAt := time.Now().Truncate(time.Second)

	proposal := &domain.Proposal{
		ID:         42,
		Title:      "Revised Cloud Migration",
		ClientID:   9,
		TemplateID: 3,
		Status:     domain.StatusApproved,
	}

	mock.ExpectQuery(`UPDATE proposals\s+SET .* updated_at = NOW\(\)\s+WHERE id = \$1\s+RETURNING updated_at`).
		WithArgs(int64(42), "Revised Cloud Migration", int64(9), int64(3), "approved", nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(updatedAt))

	err := repo.Update(context.Background(), proposal)

	require.NoError(t, err)
	assert.Equal(t, updatedAt, proposal.UpdatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProposalRepository_CountByStatus(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	repo := &proposalRepository{db: db}

	rows := sqlmock.NewRows([]string{"status", "count"}).
		AddRow("draft", int64(3)).
		AddRow("sent", int64(2))
	mock.ExpectQuery(`SELECT status, COUNT\(\*\) FROM proposals GROUP BY status`).
		WillReturnRows(rows)

	counts, err := repo.CountByStatus(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), counts["draft"])
	assert.Equal(t, int64(2), counts["sent"])
	require.NoError(t, mock.ExpectationsWereMet())
}

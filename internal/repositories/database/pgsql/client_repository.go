package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/foxentulhos/dumpster_rental_app/internal/apperrors"
	"github.com/foxentulhos/dumpster_rental_app/internal/core/domain"
	portsrepo "github.com/foxentulhos/dumpster_rental_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxClientRepository struct {
	BaseRepository
}

func newPgxClientRepository(db *pgxpool.Pool) portsrepo.ClientRepository {
	return &PgxClientRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.ClientRepository = (*PgxClientRepository)(nil)

func (r *PgxClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	query := `
        INSERT INTO clients (client_id, name, email, phone, address, document, document_type, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err := r.Pool.Exec(ctx, query,
		client.ClientID,
		client.Name,
		client.Email,
		client.Phone,
		client.Address,
		client.Document,
		client.DocumentType,
		client.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save client: %w", err)
	}
	return nil
}

func (r *PgxClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	query := `
		SELECT client_id, name, email, phone, address, document, document_type, created_at
		FROM clients
		WHERE client_id = $1;
	`
	var client domain.Client
	err := r.Pool.QueryRow(ctx, query, clientID).Scan(
		&client.ClientID,
		&client.Name,
		&client.Email,
		&client.Phone,
		&client.Address,
		&client.Document,
		&client.DocumentType,
		&client.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find client by ID %s: %w", clientID, err)
	}
	return &client, nil
}

func (r *PgxClientRepository) FindClients(ctx context.Context) ([]domain.Client, error) {
	query := `
        SELECT client_id, name, email, phone, address, document, document_type, created_at
        FROM clients
        ORDER BY created_at DESC;
    `
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}
	defer rows.Close()

	clients := []domain.Client{}
	for rows.Next() {
		var client domain.Client
		err := rows.Scan(
			&client.ClientID,
			&client.Name,
			&client.Email,
			&client.Phone,
			&client.Address,
			&client.Document,
			&client.DocumentType,
			&client.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan client row: %w", err)
		}
		clients = append(clients, client)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating client rows: %w", rows.Err())
	}

	return clients, nil
}

func (r *PgxClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	query := `
        UPDATE clients
        SET name = $1, email = $2, phone = $3, address = $4, document = $5, document_type = $6
        WHERE client_id = $7;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		client.Name,
		client.Email,
		client.Phone,
		client.Address,
		client.Document,
		client.DocumentType,
		client.ClientID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update client query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxClientRepository) DeleteClient(ctx context.Context, clientID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM clients WHERE client_id = $1;`, clientID)
	if err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

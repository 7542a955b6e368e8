package database

import (
	"database/sql"
)

type PgCampaignRepository struct {
	conn *sql.DB
}

func NewPgCampaignRepository(dsn string) (*PgCampaignRepository, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return &PgCampaignRepository{conn: db}, nil
}

func (db *PgCampaignRepository) Ping() error {
	return db.conn.Ping()
}

func (db *PgCampaignRepository) Close() error {
	if db.conn != nil {
		return db.conn.Close()
	}
	return nil
}

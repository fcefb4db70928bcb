package domain

import "time"

// DocumentType identifies the kind of fiscal document a client registered with.
type DocumentType string

const (
	DocumentCPF  DocumentType = "cpf"
	DocumentCNPJ DocumentType = "cnpj"
)

// Client represents a customer that rents dumpsters.
type Client struct {
	ClientID     string       `json:"clientID"`
	Name         string       `json:"name"`
	Email        *string      `json:"email,omitempty"`
	Phone        string       `json:"phone"`
	Address      string       `json:"address"`
	Document     string       `json:"document"`
	DocumentType DocumentType `json:"documentType"`
	CreatedAt    time.Time    `json:"createdAt"`
}

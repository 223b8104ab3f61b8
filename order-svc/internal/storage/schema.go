package storage

import (
	"context"
	"fmt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS Usuario (
		id_usuario SERIAL PRIMARY KEY,
		nome VARCHAR(100) NOT NULL,
		email VARCHAR(150) NOT NULL UNIQUE,
		senha VARCHAR(100) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS Estabelecimento (
		id_estabelecimento SERIAL PRIMARY KEY,
		nome VARCHAR(100) NOT NULL,
		endereco VARCHAR(255)
	)`,
	`CREATE TABLE IF NOT EXISTS Alimento (
		id_alimento SERIAL PRIMARY KEY,
		nome VARCHAR(100) NOT NULL,
		descricao TEXT,
		preco NUMERIC(10, 2) NOT NULL,
		tipo_alimento VARCHAR(10) NOT NULL,
		percentual_imposto NUMERIC(5, 2),
		id_estabelecimento INTEGER NOT NULL REFERENCES Estabelecimento (id_estabelecimento)
	)`,
	`CREATE TABLE IF NOT EXISTS Pedido (
		id_pedido SERIAL PRIMARY KEY,
		data_hora TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		avaliacao INTEGER CHECK (avaliacao BETWEEN 0 AND 5),
		id_usuario INTEGER NOT NULL REFERENCES Usuario (id_usuario) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS Pedido_Alimento (
		id_pedido INTEGER NOT NULL REFERENCES Pedido (id_pedido) ON DELETE CASCADE,
		id_alimento INTEGER NOT NULL REFERENCES Alimento (id_alimento),
		quantidade INTEGER NOT NULL CHECK (quantidade > 0),
		PRIMARY KEY (id_pedido, id_alimento)
	)`,
}

// EnsureSchema creates any missing table. It is safe to run on every start.
func EnsureSchema(ctx context.Context, q Querier) error {
	for _, stmt := range schemaStatements {
		if _, err := q.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}

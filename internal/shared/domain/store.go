package domain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrRequestNotFound = errors.New("request not found")
)

// Document es la forma persistida de cualquier registro: un mapa plano de campos,
// con "id" como string y "timestamp" como instante ISO-8601.
type Document = map[string]interface{}

// RecordStore es el puerto hacia la colección de documentos.
// Cada adaptador (MongoDB, SQL, memoria) debe cumplir el mismo contrato.
type RecordStore interface {
	// Insert persiste el documento. No devuelve nada más que el error.
	Insert(ctx context.Context, collection string, doc Document) error

	// Find devuelve como máximo 'limit' documentos en orden estable (orden de inserción).
	Find(ctx context.Context, collection string, limit int) ([]Document, error)

	// Update aplica un parche parcial al documento con ese id y devuelve cuántos coincidieron (0 o 1).
	Update(ctx context.Context, collection, id string, patch Document) (int64, error)

	// Count devuelve el total de documentos de la colección.
	Count(ctx context.Context, collection string) (int64, error)
}

// Counter es la parte del store que necesita el agregador de analíticas.
type Counter interface {
	Count(ctx context.Context, collection string) (int64, error)
}

// ToDocument convierte una entidad (con tags json) a su forma de documento plano.
func ToDocument(v interface{}) (Document, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return doc, nil
}

// FromDocument reconstruye una entidad a partir de un documento.
func FromDocument[T any](doc Document) (T, error) {
	var out T
	data, err := json.Marshal(doc)
	if err != nil {
		return out, fmt.Errorf("decode document: %w", err)
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("decode document: %w", err)
	}
	return out, nil
}

// FromDocuments aplica FromDocument a toda la secuencia, preservando el orden.
func FromDocuments[T any](docs []Document) ([]T, error) {
	out := make([]T, 0, len(docs))
	for _, d := range docs {
		v, err := FromDocument[T](d)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// CloneDocument hace una copia superficial del documento.
func CloneDocument(doc Document) Document {
	out := make(Document, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}

package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrConflict     = errors.New("conflicto con el estado actual")
	// ErrStorage envuelve fallos del almacenamiento (consulta o transacción) en el borde de cada caso de uso.
	ErrStorage = errors.New("error de almacenamiento")
)

// WrapStorage clasifica err como ErrStorage salvo que ya sea un error de dominio.
// El error original sigue accesible con errors.Is / errors.As.
func WrapStorage(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrConflict) || errors.Is(err, ErrStorage) {
		return err
	}
	return fmt.Errorf("%s: %w: %w", op, ErrStorage, err)
}

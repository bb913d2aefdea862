package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalStore guarda archivos de cotizaciones en un directorio local. Cada
// archivo se escribe bajo un nombre único generado por el caso de uso; el
// path resultante se persiste en la fila de la cotización.
type LocalStore struct {
	dir string
}

// NewLocalStore crea el store asegurando que el directorio exista.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de uploads: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

// Save escribe el contenido bajo storedName y devuelve el path completo y los
// bytes escritos. El archivo queda en disco antes de insertar la fila de
// metadatos; si el proceso muere entre ambos pasos queda un archivo huérfano
// que no se recupera.
func (s *LocalStore) Save(storedName string, r io.Reader) (string, int64, error) {
	path := filepath.Join(s.dir, storedName)
	f, err := os.Create(path)
	if err != nil {
		return "", 0, fmt.Errorf("crear archivo: %w", err)
	}
	written, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return "", 0, fmt.Errorf("escribir archivo: %w", err)
	}
	return path, written, nil
}

// Exists informa si el path sigue existiendo en disco.
func (s *LocalStore) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Remove elimina un archivo del disco (best effort en limpiezas).
func (s *LocalStore) Remove(path string) error {
	return os.Remove(path)
}

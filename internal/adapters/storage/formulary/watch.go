package formulary

import (
	"context"
	"path/filepath"

	"infusion-rate-calculator/internal/domain/drugs"
	"infusion-rate-calculator/internal/platform/logger"

	"github.com/fsnotify/fsnotify"
)

// Watch recarga el formulario cada vez que el archivo cambia y llama onChange con
// el catálogo nuevo. Corre hasta que se cancela ctx.
//
// Se vigila el directorio y no el archivo: un guardado atómico (tmp + rename)
// reemplaza el inode y un watch sobre el archivo se pierde.
//
// Si la recarga falla (YAML inválido, invariantes rotas) se loguea y queda
// activo el catálogo anterior.
func Watch(ctx context.Context, path string, log logger.Logger, onChange func(*drugs.Catalog)) error {
	if log == nil {
		log = logger.Nop()
	}
	log = log.With(map[string]any{"component": "formulary", "path": path})

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	target := filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return err
	}

	log.Info("watching formulary", nil)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			// El rename de un tmp sobre el archivo llega como Create.
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			c, err := Load(path)
			if err != nil {
				log.Error("formulary reload failed, keeping previous catalog", map[string]any{"err": err.Error()})
				continue
			}

			log.Info("formulary reloaded", map[string]any{"drugs": c.Len()})
			onChange(c)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error("formulary watcher error", map[string]any{"err": err.Error()})
		}
	}
}

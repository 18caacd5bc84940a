package drugs

import "context"

// Repository es la fuente del catálogo (tabla embebida, archivo de formulario o Postgres).
// Es de solo lectura: los datos de referencia no se modifican desde la API.
type Repository interface {
	List(ctx context.Context) ([]Drug, error)
	GetByKey(ctx context.Context, key string) (Drug, error)
}

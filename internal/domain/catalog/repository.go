package catalog

import "context"

type Repository interface {
	List(ctx context.Context, kind Kind) ([]Item, error)
	Get(ctx context.Context, kind Kind, id int64) (*Item, error)
}

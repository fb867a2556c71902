package pets

import "context"

type Repository interface {
	Seed(ctx context.Context, pets []Pet) error
	List(ctx context.Context) ([]Pet, error)
	GetByID(ctx context.Context, id string) (Pet, error)
}

package tags_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ordenes-api/internal/application/dto"
	"github.com/jhoicas/Ordenes-api/internal/application/tags"
	"github.com/jhoicas/Ordenes-api/internal/domain"
	"github.com/jhoicas/Ordenes-api/internal/domain/entity"
)

// fakeTagRepo repositorio en memoria con fallo inyectable por línea.
type fakeTagRepo struct {
	tags     map[string]*entity.Tag
	assigned []string // líneas etiquetadas, en orden de inserción
	failOn   string   // lineID que provoca el fallo
	failErr  error
}

func (f *fakeTagRepo) List(_ context.Context) ([]*entity.Tag, error) {
	out := make([]*entity.Tag, 0, len(f.tags))
	for _, t := range f.tags {
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeTagRepo) GetByID(_ context.Context, id string) (*entity.Tag, error) {
	return f.tags[id], nil
}

func (f *fakeTagRepo) Create(_ context.Context, tag *entity.Tag) error {
	if f.tags == nil {
		f.tags = map[string]*entity.Tag{}
	}
	f.tags[tag.ID] = tag
	return nil
}

func (f *fakeTagRepo) Assign(_ context.Context, lineID, _ string) error {
	if lineID == f.failOn {
		return f.failErr
	}
	f.assigned = append(f.assigned, lineID)
	return nil
}

func (f *fakeTagRepo) Unassign(_ context.Context, _, _ string) error { return nil }

func repoWithTag(id string) *fakeTagRepo {
	return &fakeTagRepo{tags: map[string]*entity.Tag{id: {ID: id, Name: "urgente", Color: "red"}}}
}

func TestBatchAssign_TodasLasLineas(t *testing.T) {
	repo := repoWithTag("tag-1")
	uc := tags.NewUseCase(repo)

	got, err := uc.BatchAssign(context.Background(), "tag-1", []string{"l1", "l2", "l3"})
	require.NoError(t, err)
	assert.Equal(t, []string{"l1", "l2", "l3"}, got.Applied)
	assert.Empty(t, got.FailedAt)
}

// El lote es secuencial y no atómico: el fallo en la segunda línea conserva la
// primera, nunca intenta la tercera y reporta el error de la segunda.
func TestBatchAssign_FalloParcial(t *testing.T) {
	repo := repoWithTag("tag-1")
	repo.failOn = "l2"
	repo.failErr = errors.New("fk constraint: línea inexistente")
	uc := tags.NewUseCase(repo)

	got, err := uc.BatchAssign(context.Background(), "tag-1", []string{"l1", "l2", "l3"})
	require.Error(t, err)
	assert.ErrorContains(t, err, "fk constraint")

	require.NotNil(t, got, "el resultado parcial debe reportarse junto con el error")
	assert.Equal(t, []string{"l1"}, got.Applied)
	assert.Equal(t, "l2", got.FailedAt)
	assert.Contains(t, got.Error, "fk constraint")
	assert.Equal(t, []string{"l1"}, repo.assigned, "la tercera línea nunca debe intentarse")
}

func TestBatchAssign_EtiquetaInexistente(t *testing.T) {
	uc := tags.NewUseCase(&fakeTagRepo{})

	_, err := uc.BatchAssign(context.Background(), "tag-x", []string{"l1"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBatchAssign_EntradaInvalida(t *testing.T) {
	uc := tags.NewUseCase(repoWithTag("tag-1"))

	_, err := uc.BatchAssign(context.Background(), "", []string{"l1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.BatchAssign(context.Background(), "tag-1", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_Etiqueta(t *testing.T) {
	repo := &fakeTagRepo{}
	uc := tags.NewUseCase(repo)

	got, err := uc.Create(context.Background(), dto.CreateTagRequest{Name: "frágil", Color: "yellow"})
	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "frágil", got.Name)

	_, err = uc.Create(context.Background(), dto.CreateTagRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

package language

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/webbooks/internal/platform/apperr"
	"github.com/taibuivan/webbooks/internal/platform/dberr"
	"github.com/taibuivan/webbooks/pkg/query"
)

type stubRepository struct {
	created []*Language
}

func (s *stubRepository) FindByID(context.Context, int) (*Language, error) {
	return nil, dberr.ErrNotFound
}

func (s *stubRepository) ListBy(context.Context, query.Criteria) ([]*Language, error) {
	return s.created, nil
}

func (s *stubRepository) Count(context.Context, query.Criteria) (int, error) {
	return len(s.created), nil
}

func (s *stubRepository) Create(_ context.Context, language *Language) error {
	language.ID = len(s.created) + 1
	s.created = append(s.created, language)
	return nil
}

func (s *stubRepository) Delete(context.Context, int) error {
	return dberr.ErrNotFound
}

func TestService_CreateLanguage(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"Plain name", "English", "English", false},
		{"Cyrillic within limit", "Русский", "Русский", false},
		{"Trimmed", "  French ", "French", false},
		{"Blank", "   ", "", true},
		{"Too long", "Old High German Dialect", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repository := &stubRepository{}
			service := NewService(repository, slog.New(slog.NewTextHandler(io.Discard, nil)))

			language, err := service.CreateLanguage(context.Background(), Input{Name: tt.input})

			if tt.wantErr {
				assert.True(t, apperr.HasCode(err, apperr.CodeValidation))
				assert.Empty(t, repository.created)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, language.Name)
		})
	}
}

func TestService_MissingLanguage(t *testing.T) {
	service := NewService(&stubRepository{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := service.GetLanguage(context.Background(), 5)
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))

	err = service.DeleteLanguage(context.Background(), 5)
	assert.Equal(t, "Language not found", apperr.As(err).Message)
}

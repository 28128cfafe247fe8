package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/gestao-dashboard/internal/httperr"
	"github.com/BruksfildServices01/gestao-dashboard/internal/models"
)

var users = []models.User{
	{ID: 1, Username: "admin", Role: "admin"},
	{ID: 2, Username: "carla", Role: "vendedor", CanProvideServices: true},
	{ID: 3, Username: "bruno", Role: "vendedor", CanSell: true},
}

func TestBuildResolvesProfessional(t *testing.T) {
	id := uint(2)
	s, err := Build(Input{Name: "Corte", Duration: "30", ProfessionalID: &id, Professional: "ignored", Price: "45"}, users)
	require.NoError(t, err)

	assert.Equal(t, "carla", s.Professional)
	assert.Equal(t, &id, s.ProfessionalID)
	assert.Equal(t, 30, s.Duration)
	assert.Equal(t, 45.0, s.Price)
}

func TestBuildZeroDurationAllowed(t *testing.T) {
	s, err := Build(Input{Name: "Avaliação", Duration: "0", Professional: "Ana", Price: "0"}, users)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Duration)
}

func TestBuildRejects(t *testing.T) {
	seller := uint(3)
	_, err := Build(Input{ProfessionalID: &seller}, users)

	ve, ok := httperr.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "Usuário não presta serviços", ve.Fields["profissionalId"])
	assert.Contains(t, ve.Fields, "nome")
	assert.Contains(t, ve.Fields, "duracao")
	assert.Contains(t, ve.Fields, "preco")

	_, err = Build(Input{Name: "X", Duration: 10, Price: 1}, users)
	ve, ok = httperr.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "profissional")
}

func TestProfessionals(t *testing.T) {
	got := Professionals(users)
	require.Len(t, got, 2)
	assert.Equal(t, "admin", got[0].Username)
	assert.Equal(t, "carla", got[1].Username)
}

func TestFilterAndStats(t *testing.T) {
	items := []models.Service{
		{ID: 1, Name: "Corte", Duration: 30, Professional: "carla", Price: 40},
		{ID: 2, Name: "Corte infantil", Duration: 25, Professional: "carla", Price: 30},
		{ID: 3, Name: "Barba", Duration: 20, Professional: "admin", Price: 25},
	}

	assert.Len(t, Filter{Name: "corte"}.Apply(items), 2)
	assert.Len(t, Filter{Professional: "admin"}.Apply(items), 1)
	assert.Len(t, Filter{Professional: "todos"}.Apply(items), 3)

	assert.Equal(t, Stats{Total: 3, AverageDuration: 25, AveragePrice: 31.67, UniqueProfessionals: 2}, ComputeStats(items))
	assert.Equal(t, Stats{}, ComputeStats(nil))
}

package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/gestao-dashboard/internal/models"
)

var services = []models.Service{
	{ID: 1, Name: "Corte", Duration: 30, Professional: "Carlos"},
	{ID: 2, Name: "Barba", Duration: 20, Professional: "Ana"},
	{ID: 3, Name: "Consulta", Duration: 0, Professional: "Ana"},
}

func existing(id uint, hour, status string) models.Appointment {
	return models.Appointment{
		ID:      id,
		Client:  "Fulano",
		Service: "Corte",
		Date:    "2024-05-10",
		Time:    hour,
		Status:  status,
	}
}

func candidate(hour string) models.Appointment {
	return models.Appointment{
		Client:  "Beltrano",
		Service: "Corte",
		Date:    "2024-05-10",
		Time:    hour,
		Status:  string(StatusScheduled),
	}
}

func TestFindConflictHalfOpenInterval(t *testing.T) {
	apps := []models.Appointment{existing(1, "09:00", "agendado")}

	c := FindConflict(candidate("09:29"), 0, apps, services)
	require.NotNil(t, c)
	assert.Equal(t, Conflict{Date: "2024-05-10", Time: "09:00", Service: "Corte"}, *c)

	assert.Nil(t, FindConflict(candidate("09:30"), 0, apps, services))
	assert.Nil(t, FindConflict(candidate("08:30"), 0, apps, services))
	assert.NotNil(t, FindConflict(candidate("08:31"), 0, apps, services))
}

func TestFindConflictIgnoresCancelled(t *testing.T) {
	apps := []models.Appointment{existing(1, "09:00", "cancelado")}
	assert.Nil(t, FindConflict(candidate("09:00"), 0, apps, services))
}

func TestFindConflictSkipsEditedAppointment(t *testing.T) {
	apps := []models.Appointment{existing(7, "09:00", "confirmado")}

	self := candidate("09:15")
	self.ID = 7

	assert.Nil(t, FindConflict(self, 7, apps, services))
	assert.NotNil(t, FindConflict(self, 0, apps, services))
}

func TestFindConflictOtherDateOrServiceOrUnknown(t *testing.T) {
	apps := []models.Appointment{existing(1, "09:00", "agendado")}

	other := candidate("09:00")
	other.Date = "2024-05-11"
	assert.Nil(t, FindConflict(other, 0, apps, services))

	other = candidate("09:00")
	other.Service = "Barba"
	assert.Nil(t, FindConflict(other, 0, apps, services))

	other = candidate("09:00")
	other.Service = "Inexistente"
	assert.Nil(t, FindConflict(other, 0, apps, services))
}

func TestFindConflictZeroDuration(t *testing.T) {
	apps := []models.Appointment{{ID: 1, Service: "Consulta", Date: "2024-05-10", Time: "10:00", Status: "agendado"}}
	c := models.Appointment{Service: "Consulta", Date: "2024-05-10", Time: "10:00", Status: "agendado"}

	assert.Nil(t, FindConflict(c, 0, apps, services))
}

func TestToMinutes(t *testing.T) {
	m, err := ToMinutes("09:30")
	require.NoError(t, err)
	assert.Equal(t, 570, m)
	assert.Equal(t, "09:30", FromMinutes(m))

	for _, bad := range []string{"", "9", "24:00", "10:60", "aa:bb", "10:5"} {
		_, err := ToMinutes(bad)
		assert.Error(t, err, bad)
	}
}

func TestFreeSlots(t *testing.T) {
	apps := []models.Appointment{existing(1, "09:00", "agendado")}

	slots, err := FreeSlots(services[0], "2024-05-10", WorkingHours{Start: "08:00", End: "10:00"}, apps, services)
	require.NoError(t, err)

	assert.Equal(t, []TimeSlot{
		{Start: "08:00", End: "08:30"},
		{Start: "08:30", End: "09:00"},
		{Start: "09:30", End: "10:00"},
	}, slots)
}

package appointment

import (
	"github.com/BruksfildServices01/gestao-dashboard/internal/models"
)

// WorkingHours is the daily window in which slots are offered.
type WorkingHours struct {
	Start string
	End   string
}

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// FreeSlots walks the working day in steps of the service duration and
// returns every slot that FindConflict accepts.
func FreeSlots(
	service models.Service,
	date string,
	wh WorkingHours,
	appointments []models.Appointment,
	services []models.Service,
) ([]TimeSlot, error) {

	dayStart, err := ToMinutes(wh.Start)
	if err != nil {
		return nil, err
	}
	dayEnd, err := ToMinutes(wh.End)
	if err != nil {
		return nil, err
	}

	slots := []TimeSlot{}
	if service.Duration <= 0 {
		return slots, nil
	}

	for cur := dayStart; cur+service.Duration <= dayEnd; cur += service.Duration {
		candidate := models.Appointment{
			Service: service.Name,
			Date:    date,
			Time:    FromMinutes(cur),
			Status:  string(StatusScheduled),
		}

		if FindConflict(candidate, 0, appointments, services) != nil {
			continue
		}

		slots = append(slots, TimeSlot{
			Start: FromMinutes(cur),
			End:   FromMinutes(cur + service.Duration),
		})
	}

	return slots, nil
}

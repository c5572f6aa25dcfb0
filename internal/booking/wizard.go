package booking

import "errors"

// ======================
// 🔹 Wizard State Machine
// ======================
//
// The wizard is strictly sequential: Next is gated on the current step's
// required fields, Back is always allowed except at the first reachable
// step, and there is no skip-ahead. Which fields a step shows and requires
// comes from the step table below rather than service-type conditionals
// scattered through the handlers.

var (
	ErrAtFirstStep    = errors.New("already at the first step")
	ErrAtFinalStep    = errors.New("already at the confirmation step")
	ErrStepIncomplete = errors.New("required fields missing for this step")
)

type stepSpec struct {
	visible func(d *Draft) []string
	missing func(d *Draft) []string
}

var stepTable = map[Step]stepSpec{
	StepServiceSelect: {
		visible: func(d *Draft) []string { return []string{"service_type"} },
		missing: func(d *Draft) []string {
			if !d.ServiceType.Valid() {
				return []string{"service_type"}
			}
			return nil
		},
	},
	StepItemSelect: {
		visible: func(d *Draft) []string { return []string{"slug"} },
		missing: func(d *Draft) []string {
			if d.Item == nil {
				return []string{"slug"}
			}
			return nil
		},
	},
	StepTripDetails: {
		visible: func(d *Draft) []string {
			fields := []string{"start_date", "end_date", "tier", "special_request"}
			if d.ServiceType == ServiceHotel {
				fields = append(fields, "rooms")
			}
			return fields
		},
		missing: func(d *Draft) []string {
			if d.StartDate == "" {
				return []string{"start_date"}
			}
			return nil
		},
	},
	StepTravelers: {
		visible: func(d *Draft) []string {
			return []string{"adults", "children", "first_name", "last_name", "email", "phone"}
		},
		missing: func(d *Draft) []string {
			var missing []string
			if d.FirstName == "" {
				missing = append(missing, "first_name")
			}
			if d.LastName == "" {
				missing = append(missing, "last_name")
			}
			if d.Email == "" {
				missing = append(missing, "email")
			}
			return missing
		},
	},
	StepConfirmation: {
		visible: func(d *Draft) []string { return nil },
		missing: func(d *Draft) []string { return nil },
	},
}

// FirstStep is where the wizard starts; pre-bound drafts skip straight to
// trip details.
func (d *Draft) FirstStep() Step {
	if d.PreBound {
		return StepTripDetails
	}
	return StepServiceSelect
}

// VisibleFields returns the field set the current step shows for this
// draft's service type.
func (d *Draft) VisibleFields() []string {
	return stepTable[d.Step].visible(d)
}

// MissingFields returns the unmet requirements of the current step. An empty
// result means Next is enabled.
func (d *Draft) MissingFields() []string {
	return stepTable[d.Step].missing(d)
}

// CanAdvance reports whether the Next control is enabled.
func (d *Draft) CanAdvance() bool {
	return len(d.MissingFields()) == 0
}

// CanGoBack reports whether the Back control is enabled.
func (d *Draft) CanGoBack() bool {
	return d.Step > d.FirstStep()
}

// Advance moves one step forward after validating the current step.
func (d *Draft) Advance() error {
	if d.Step >= StepConfirmation {
		return ErrAtFinalStep
	}
	if !d.CanAdvance() {
		return ErrStepIncomplete
	}
	d.Step++
	return nil
}

// Regress moves one step back; field values are kept.
func (d *Draft) Regress() error {
	if !d.CanGoBack() {
		return ErrAtFirstStep
	}
	d.Step--
	return nil
}

// MissingForSubmit validates every step up to confirmation, for the final
// gate before a booking is persisted.
func (d *Draft) MissingForSubmit() []string {
	var missing []string
	for step := d.FirstStep(); step < StepConfirmation; step++ {
		missing = append(missing, stepTable[step].missing(d)...)
	}
	return missing
}

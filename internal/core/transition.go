package core

import "dsw/internal/domain"

// PlanTransition computes the display-manager switch between two profiles.
// When both profiles use the same service (or neither has one) the
// transition is empty and the composer emits nothing for it. Otherwise the
// old service is disabled and the new one enabled; the composer always
// emits the pair together so the machine is never left without a login
// manager.
func PlanTransition(current, target domain.Profile) domain.DMTransition {
	if current.DisplayManager == target.DisplayManager {
		return domain.DMTransition{}
	}
	return domain.DMTransition{
		Disable: current.DisplayManager,
		Enable:  target.DisplayManager,
	}
}

package player

// MaxVolume is the loudest volume level.
const MaxVolume = 100

// VolumeLevel is a 0..MaxVolume level changed in fixed steps.
type VolumeLevel struct {
	Level int
	Step  int
}

// Up raises the level by one step.
func (v *VolumeLevel) Up() {
	v.Level = min(v.Level+v.Step, MaxVolume)
}

// Down lowers the level by one step.
func (v *VolumeLevel) Down() {
	v.Level = max(v.Level-v.Step, 0)
}

// Fraction returns the level as 0..1.
func (v VolumeLevel) Fraction() float64 {
	return float64(v.Level) / MaxVolume
}

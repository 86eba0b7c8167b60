package rocket

// Kind enumerates the closed set of component geometry kinds. Adding a kind
// requires adding a matching force strategy to the barrowman registry.
type Kind int

const (
	KindNoseCone Kind = iota
	KindTransition
	KindBodyTube
	KindTrapezoidFinSet
	KindLaunchLug
	KindMassComponent
)

func (k Kind) String() string {
	switch k {
	case KindNoseCone:
		return "nosecone"
	case KindTransition:
		return "transition"
	case KindBodyTube:
		return "bodytube"
	case KindTrapezoidFinSet:
		return "finset"
	case KindLaunchLug:
		return "launchlug"
	case KindMassComponent:
		return "mass"
	}
	return "unknown"
}

// Finish is the surface finish of an external component. The associated
// roughness height bounds the skin friction coefficient in the
// roughness-limited regime.
type Finish int

const (
	FinishPolished Finish = iota
	FinishSmooth
	FinishNormal
	FinishUnfinished
	FinishRough

	finishCount
)

// NumFinishes is the number of distinct finish kinds, for per-finish caches.
const NumFinishes = int(finishCount)

// Roughness returns the approximate surface roughness height in meters.
func (f Finish) Roughness() float64 {
	switch f {
	case FinishPolished:
		return 2e-6
	case FinishSmooth:
		return 20e-6
	case FinishNormal:
		return 60e-6
	case FinishUnfinished:
		return 150e-6
	case FinishRough:
		return 500e-6
	}
	return 500e-6
}

func (f Finish) String() string {
	switch f {
	case FinishPolished:
		return "polished"
	case FinishSmooth:
		return "smooth"
	case FinishNormal:
		return "normal"
	case FinishUnfinished:
		return "unfinished"
	case FinishRough:
		return "rough"
	}
	return "unknown"
}

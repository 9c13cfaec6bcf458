package typedesc

import "fmt"

// Magic is the validity tag stored in every descriptor.
type Magic uint64

const (
	// MagicLive marks a fully initialized descriptor.
	MagicLive Magic = 0x72657473786f62
	// MagicInvalid marks a descriptor whose storage exists but is not yet initialized.
	MagicInvalid Magic = 0x7265745f786f62
	// MagicFreed marks a descriptor whose storage has been released.
	MagicFreed Magic = 0x6c6c756e786f62
)

func (m Magic) String() string {
	switch m {
	case MagicLive:
		return "live"
	case MagicInvalid:
		return "invalid"
	case MagicFreed:
		return "freed"
	default:
		return fmt.Sprintf("magic(%#x)", uint64(m))
	}
}

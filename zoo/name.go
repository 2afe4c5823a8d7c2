package zoo

// Name is a short, inline stored name. It does not reference any memory
// and can be held by an AnyAnimal.
type Name struct {
	len   uint8
	bytes [31]byte
}

// NameOf creates a new Name. Names longer than 31 bytes are truncated.
func NameOf(name string) Name {
	var n Name
	n.len = uint8(copy(n.bytes[:], name))
	return n
}

func (n Name) String() string {
	return string(n.bytes[:n.len])
}

package resource

type Kind int

const (
	Global Kind = iota
	Grid
	Session
	Log
)

func (k Kind) String() string {
	return [...]string{
		"global",
		"grid",
		"session",
		"log",
	}[k]
}

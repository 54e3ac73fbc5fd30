package sha256

type (
	bo = bool
	by = []byte
	st = string
	er = error
	no = int
)

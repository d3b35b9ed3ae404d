package w32

func BoolToBOOL(value bool) int32 {
	if value {
		return 1
	}

	return 0
}

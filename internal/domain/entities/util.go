package entities

import "strconv"

func itoa[T ~int | ~int64](v T) string {
	return strconv.FormatInt(int64(v), 10)
}

package util

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

var (
	ErrUnsupportedTypeConversion = errors.New("unsupported type conversion")
	ErrParseInt                  = errors.New("invalid integer")
	ErrParseUint                 = errors.New("invalid unsigned integer")
	ErrParseFloat                = errors.New("invalid floating point number")
	ErrParseBool                 = errors.New("invalid boolean")
	ErrParseTime                 = errors.New("invalid date or time")
	ErrParseDuration             = errors.New("invalid duration")
)

const fmtErrorWithString = "%w: %s"

// ConvertString converts value into the type pointed to by data. List
// values are split on the runes matched by delimiterFunc.
func ConvertString(value string, data any, delimiterFunc func(matchOn rune) bool) error {
	switch t := data.(type) {
	case *string:
		*t = value
	case *[]string:
		*t = strings.FieldsFunc(value, delimiterFunc)
	case *int:
		val, err := strconv.ParseInt(value, 10, strconv.IntSize)
		if err != nil {
			return fmt.Errorf(fmtErrorWithString, ErrParseInt, value)
		}
		*t = int(val)
	case *int64:
		val, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf(fmtErrorWithString, ErrParseInt, value)
		}
		*t = val
	case *[]int:
		values := strings.FieldsFunc(value, delimiterFunc)
		temp := make([]int, len(values))
		for i, v := range values {
			val, err := strconv.ParseInt(v, 10, strconv.IntSize)
			if err != nil {
				return fmt.Errorf(fmtErrorWithString, ErrParseInt, v)
			}
			temp[i] = int(val)
		}
		*t = temp
	case *uint:
		val, err := strconv.ParseUint(value, 10, strconv.IntSize)
		if err != nil {
			return fmt.Errorf(fmtErrorWithString, ErrParseUint, value)
		}
		*t = uint(val)
	case *uint64:
		val, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return fmt.Errorf(fmtErrorWithString, ErrParseUint, value)
		}
		*t = val
	case *float32:
		val, err := strconv.ParseFloat(value, 32)
		if err != nil {
			return fmt.Errorf(fmtErrorWithString, ErrParseFloat, value)
		}
		*t = float32(val)
	case *float64:
		val, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf(fmtErrorWithString, ErrParseFloat, value)
		}
		*t = val
	case *bool:
		val, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf(fmtErrorWithString, ErrParseBool, value)
		}
		*t = val
	case *time.Time:
		val, err := dateparse.ParseLocal(value)
		if err != nil {
			return fmt.Errorf(fmtErrorWithString, ErrParseTime, value)
		}
		*t = val
	case *time.Duration:
		val, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf(fmtErrorWithString, ErrParseDuration, value)
		}
		*t = val
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedTypeConversion, data)
	}

	return nil
}

package climux

import "github.com/skiron/climux/util"

// Convert is the default converter used by the built-in leaf parsers. It
// supports the scalar, slice and time types understood by
// util.ConvertString; anything else fails with
// util.ErrUnsupportedTypeConversion.
func Convert[T any](raw string) (T, error) {
	var value T
	if err := util.ConvertString(raw, &value, DefaultListDelimiter); err != nil {
		var zero T
		return zero, err
	}

	return value, nil
}

// DefaultListDelimiter splits list values on ',', '|' and ' '.
func DefaultListDelimiter(matchOn rune) bool {
	return matchOn == ',' || matchOn == '|' || matchOn == ' '
}

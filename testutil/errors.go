package testutil

// SameErrorString reports whether err and target are both nil or print the
// same message. Decoding errors from encoding/hex are values built at the
// failure site, so tests compare them by text.
func SameErrorString(err, target error) bool {
	if err == nil || target == nil {
		return err == target
	}
	return err.Error() == target.Error()
}

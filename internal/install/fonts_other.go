//go:build !windows

package install

// registerFont is a no-op: fontconfig picks up files in the user font dir.
func registerFont(string) error {
	return nil
}

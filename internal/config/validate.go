package config

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/neodefaults/neodefaults-installer/internal/messages"
)

// Validate ensures the config is complete and consistent.
func (c *Config) Validate(source string) error {
	if c.Discovery.MinDriveSizeGB <= 0 {
		return fmt.Errorf(messages.ConfigMinDriveSizeInvalidFmt, source)
	}
	if len(c.Discovery.Candidates) == 0 {
		return fmt.Errorf(messages.ConfigCandidatesRequiredFmt, source)
	}
	for i, candidate := range c.Discovery.Candidates {
		if isAbsoluteCandidate(candidate) {
			return fmt.Errorf(messages.ConfigCandidateAbsoluteFmt, source, i, candidate)
		}
	}
	if strings.TrimSpace(c.Discovery.DataDir) == "" {
		return fmt.Errorf(messages.ConfigDataDirRequiredFmt, source)
	}

	if strings.TrimSpace(c.Config.Folder) == "" {
		return fmt.Errorf(messages.ConfigFolderRequiredFmt, source)
	}
	if strings.TrimSpace(c.Config.Source) == "" {
		return fmt.Errorf(messages.ConfigSourceRequiredFmt, source)
	}
	if strings.TrimSpace(c.Config.Dest) == "" {
		return fmt.Errorf(messages.ConfigDestRequiredFmt, source)
	}
	if strings.TrimSpace(c.Config.Custom) == "" {
		return fmt.Errorf(messages.ConfigCustomRequiredFmt, source)
	}
	if strings.EqualFold(c.Config.Custom, c.Config.Dest) {
		return fmt.Errorf(messages.ConfigCustomSameAsDestFmt, source)
	}

	if len(c.Bundles) == 0 {
		return fmt.Errorf(messages.ConfigBundlesRequiredFmt, source)
	}
	seen := make(map[string]int, len(c.Bundles))
	for i, b := range c.Bundles {
		if strings.TrimSpace(b.ID) == "" {
			return fmt.Errorf(messages.ConfigBundleIDRequiredFmt, source, i)
		}
		if prev, ok := seen[b.ID]; ok {
			return fmt.Errorf(messages.ConfigBundleIDDuplicateFmt, source, i, b.ID, prev)
		}
		seen[b.ID] = i
		if strings.TrimSpace(b.Archive) == "" {
			return fmt.Errorf(messages.ConfigBundleArchiveRequiredFmt, source, i)
		}
		if strings.TrimSpace(b.Dir) == "" {
			return fmt.Errorf(messages.ConfigBundleDirRequiredFmt, source, i)
		}
		// The archive root must land directly under custom/, so Dir is one element.
		if strings.ContainsAny(b.Dir, `/\`) || b.Dir == "." || b.Dir == ".." {
			return fmt.Errorf(messages.ConfigBundleDirNestedFmt, source, i, b.Dir)
		}
	}

	if _, ok := seen[c.Fonts.Bundle]; !ok {
		return fmt.Errorf(messages.ConfigFontsBundleUnknownFmt, source, c.Fonts.Bundle)
	}
	if strings.TrimSpace(c.Fonts.Dir) == "" {
		return fmt.Errorf(messages.ConfigFontsDirRequiredFmt, source)
	}
	if _, err := path.Match(c.Autoexec.PluginPattern, ""); err != nil {
		return fmt.Errorf(messages.ConfigPluginPatternInvalidFmt, source, c.Autoexec.PluginPattern, err)
	}
	return nil
}

// isAbsoluteCandidate rejects rooted paths and drive-qualified paths on any platform.
func isAbsoluteCandidate(candidate string) bool {
	if filepath.IsAbs(candidate) || strings.HasPrefix(candidate, "/") || strings.HasPrefix(candidate, `\`) {
		return true
	}
	return len(candidate) >= 2 && candidate[1] == ':'
}

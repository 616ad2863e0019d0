package sync

import (
	"errors"
	"path/filepath"
	"strings"

	"asset-sync/core/mapping"
	"asset-sync/feature/assets"
)

// Config holds configuration for the batch runner and the local asset folders.
type Config struct {
	// InputRoot is the directory holding the asset folders.
	InputRoot string `mapstructure:"input_root" default:"public"`
	// InfographicsDir is the folder (under InputRoot) of infographic assets.
	InfographicsDir string `mapstructure:"infographics_dir" default:"infographics"`
	// MindmapsDir is the folder (under InputRoot) of mindmap assets.
	MindmapsDir string `mapstructure:"mindmaps_dir" default:"mindmaps"`
	// Extensions is a comma separated list of accepted file extensions.
	Extensions string `mapstructure:"extensions" default:".png,.jpg,.jpeg"`
	// ObjectPrefix is prepended to uploaded object names.
	ObjectPrefix string `mapstructure:"object_prefix" default:"assets"`
	// Discover seeds the mapping with every channel video before reconciling assets.
	Discover bool `mapstructure:"discover" default:"true"`
}

// Folders returns the asset folders in scan order.
func (c Config) Folders() []assets.Folder {
	return []assets.Folder{
		{Kind: mapping.KindInfographic, Dir: filepath.Join(c.InputRoot, c.InfographicsDir)},
		{Kind: mapping.KindMindmap, Dir: filepath.Join(c.InputRoot, c.MindmapsDir)},
	}
}

// ExtensionList splits Extensions.
func (c Config) ExtensionList() []string {
	var out []string
	for _, ext := range strings.Split(c.Extensions, ",") {
		if ext = strings.TrimSpace(ext); ext != "" {
			out = append(out, ext)
		}
	}
	return out
}

// Validate checks that folders and extensions are set.
func (c Config) Validate() error {
	var errs []error
	if c.InfographicsDir == "" || c.MindmapsDir == "" {
		errs = append(errs, errors.New("asset folders must not be empty"))
	}
	if len(c.ExtensionList()) == 0 {
		errs = append(errs, errors.New("at least one asset extension is required"))
	}
	return errors.Join(errs...)
}

package commands

import (
	"fmt"

	"git.home.luguber.info/inful/blogbuilder/internal/build"
	"git.home.luguber.info/inful/blogbuilder/internal/config"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct{}

func (b *BuildCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return err
	}
	applyConfiguredLevel(root, cfg)

	result, err := build.NewService().Run(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("Built %d posts into %s\n", len(result.Posts), result.OutputPath)
	return nil
}

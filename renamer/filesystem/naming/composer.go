package naming

import (
	"fmt"

	"github.com/ZanzyTHEbar/uuid-renamer/renamer/filesystem/common"
)

// Composer builds new file names from a token and the original extension
type Composer struct {
	generator TokenGenerator
	pathUtils *common.PathUtils
}

// NewComposer creates a composer drawing tokens from generator
func NewComposer(generator TokenGenerator) *Composer {
	return &Composer{
		generator: generator,
		pathUtils: common.NewPathUtils(),
	}
}

// Compose returns "<TOKEN>.<ext>" for the base name originalName.
// The dot is always present, so a name without extension becomes "<TOKEN>.".
func (c *Composer) Compose(originalName string) (string, error) {
	token, err := c.generator.NewToken()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s.%s", token, c.pathUtils.Extension(originalName)), nil
}

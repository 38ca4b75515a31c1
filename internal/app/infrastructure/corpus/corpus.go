package corpus

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Corpus holds the identifier pools the synthesizer draws from. Both pools
// are immutable after Load.
type Corpus struct {
	Nicks    []string
	Channels []string

	union []string
}

// Load reads the channel corpus and, when a path is given, the nickname
// corpus. A missing or unreadable channels file is an error; the nicks file
// is optional and silently skipped when absent.
func Load(channelsPath, nicksPath string) (*Corpus, error) {
	channels, err := loadFile(channelsPath)
	if err != nil {
		return nil, fmt.Errorf("load channels corpus: %w", err)
	}
	if len(channels) == 0 {
		return nil, fmt.Errorf("channels corpus %s is empty", channelsPath)
	}

	var nicks []string
	if nicksPath != "" {
		nicks, err = loadFile(nicksPath)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("load nicks corpus: %w", err)
		}
	}

	c := &Corpus{
		Nicks:    nicks,
		Channels: channels,
		union:    make([]string, 0, len(nicks)+len(channels)),
	}
	c.union = append(c.union, c.Nicks...)
	c.union = append(c.union, c.Channels...)

	return c, nil
}

// Union returns the combined pool of nicknames and channels.
func (c *Corpus) Union() []string {
	return c.union
}

func loadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tokens := make([]string, 0, 64)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		token := strings.TrimSpace(scanner.Text())
		if token == "" {
			continue
		}
		tokens = append(tokens, token)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return tokens, nil
}

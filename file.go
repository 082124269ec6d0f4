package swf

import "os"

// ParseFile opens path and parses it as a movie. The file is closed on
// every exit path; the movie keeps no handle on it afterwards.
func ParseFile(path string, opts ...Option) (*Movie, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f, opts...)
}

// SaveFile writes the movie to path.
func (m *Movie) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := m.Save(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

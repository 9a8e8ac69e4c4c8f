// event-app10/config/roster.go

package config

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Member is one entry of the fixed member roster. Email is optional; members
// without one simply never receive calendar invites.
type Member struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email,omitempty"`
}

// Roster is the closed configuration set of the group: who can register and
// which gyms can be proposed. It is loaded once at startup and passed into
// the handlers explicitly.
type Roster struct {
	Members []Member `yaml:"members"`
	Gyms    []string `yaml:"gyms"`
}

// Names returns the member display names in roster order.
func (r Roster) Names() []string {
	names := make([]string, 0, len(r.Members))
	for _, m := range r.Members {
		names = append(names, m.Name)
	}
	return names
}

// Email looks up a member's registered address by display name. The second
// return value is false when the member is unknown or has no address on file.
func (r Roster) Email(name string) (string, bool) {
	for _, m := range r.Members {
		if m.Name == name && m.Email != "" {
			return m.Email, true
		}
	}
	return "", false
}

func defaultRoster() Roster {
	return Roster{
		Members: []Member{
			{Name: "松村"},
			{Name: "山火"},
			{Name: "山根"},
			{Name: "奥迫"},
			{Name: "川崎"},
		},
		Gyms: []string{"中平井", "平井", "西小岩", "北小岩", "南小岩"},
	}
}

// LoadRoster reads the YAML roster file. On first run the file is created
// with the default member and gym lists so there is something to edit.
func LoadRoster(path string) (Roster, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		r := defaultRoster()
		out, merr := yaml.Marshal(r)
		if merr != nil {
			return Roster{}, merr
		}
		if werr := os.WriteFile(path, out, 0o600); werr != nil {
			return Roster{}, werr
		}
		return r, nil
	}
	if err != nil {
		return Roster{}, err
	}

	var r Roster
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Roster{}, err
	}
	if len(r.Members) == 0 {
		r.Members = defaultRoster().Members
	}
	if len(r.Gyms) == 0 {
		r.Gyms = defaultRoster().Gyms
	}
	return r, nil
}

// internal/generator/base.go
package generator

import (
	"strconv"

	"github.com/google/uuid"

	"github.com/tamzrod/signage-configgen/internal/configdata"
	"github.com/tamzrod/signage-configgen/internal/store"
)

// ---- BASE SECTIONS ----

const (
	SectionIdentity = "identity"
	SectionNetwork  = "network"
)

var baseIdentityKeys = []string{"uuid", "player_name", "content_url", "dhcp"}

// staticNetwork maps static addressing keys to their placeholders.
// Order is the order missing keys are reported in.
var staticNetwork = []struct {
	key         string
	placeholder string
}{
	{"ip_address", "IP_ADDRESS"},
	{"netmask", "NETMASK"},
	{"gateway", "GATEWAY"},
	{"dns", "DNS"},
}

var baseStage = Stage{
	Name:     "base",
	Required: baseRequired,
	Apply:    applyBase,
}

func baseRequired(d configdata.Data) []string {
	keys := append([]string(nil), baseIdentityKeys...)

	// Static addressing needs the full set; an unreadable dhcp value is
	// left to schema validation.
	if d.Has("dhcp") {
		if dhcp, err := d.Bool("dhcp"); err == nil && !dhcp {
			for _, s := range staticNetwork {
				keys = append(keys, s.key)
			}
		}
	}
	return keys
}

// applyBase substitutes identity and networking into block 0 of the seeded
// sections. It overwrites, so repeated runs keep one base block.
func applyBase(d configdata.Data, t store.Template) (store.Template, error) {
	out := t.Clone()

	id, err := d.String("uuid")
	if err != nil {
		return store.Template{}, err
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return store.Template{}, &configdata.InvalidValueError{Key: "uuid", Reason: "not a UUID", Err: err}
	}

	name, err := d.String("player_name")
	if err != nil {
		return store.Template{}, err
	}
	url, err := d.String("content_url")
	if err != nil {
		return store.Template{}, err
	}

	out.Set(SectionIdentity, "PLAYER_UUID", parsed.String())
	out.Set(SectionIdentity, "PLAYER_NAME", name)
	out.Set(SectionIdentity, "CONTENT_URL", url)

	dhcp, err := d.Bool("dhcp")
	if err != nil {
		return store.Template{}, err
	}
	out.Set(SectionNetwork, "DHCP", strconv.FormatBool(dhcp))

	if dhcp {
		return out, nil
	}

	for _, s := range staticNetwork {
		v, err := d.String(s.key)
		if err != nil {
			return store.Template{}, err
		}
		out.Set(SectionNetwork, s.placeholder, v)
	}

	return out, nil
}

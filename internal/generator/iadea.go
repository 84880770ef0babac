// internal/generator/iadea.go
package generator

import (
	"strings"

	"github.com/tamzrod/signage-configgen/internal/configdata"
	"github.com/tamzrod/signage-configgen/internal/store"
)

const (
	SectionBrightness      = "brightness"
	SectionVolume          = "volume"
	SectionScheduledReboot = "scheduled_reboot"
	SectionTimeSync        = "time_sync"
	SectionTimeZone        = "time_zone"
)

// iadeaSections are the optional sections of the IAdea device family.
var iadeaSections = []OptionalSection{
	{
		Section: SectionBrightness,
		Keys:    []string{"brightness"},
		Build:   scalar("brightness", "BRIGHTNESS"),
	},
	{
		Section: SectionVolume,
		Keys:    []string{"volume"},
		Build:   scalar("volume", "VOLUME"),
	},
	{
		// Both keys or nothing.
		Section: SectionScheduledReboot,
		Keys:    []string{"reboot_days", "reboot_time"},
		Build:   buildScheduledReboot,
	},
	{
		Section: SectionTimeSync,
		Keys:    []string{"ntp_server"},
		Build:   scalar("ntp_server", "NTP_SERVER"),
	},
	{
		Section: SectionTimeZone,
		Keys:    []string{"time_zone"},
		Build:   scalar("time_zone", "TIME_ZONE"),
	},
}

var iadeaStage = optionalStage("iadea", iadeaSections)

func buildScheduledReboot(d configdata.Data) (store.Block, error) {
	days, err := d.Strings("reboot_days")
	if err != nil {
		return nil, err
	}
	at, err := d.String("reboot_time")
	if err != nil {
		return nil, err
	}
	return store.Block{
		"REBOOT_DAYS": strings.Join(days, " "),
		"REBOOT_TIME": at,
	}, nil
}

package browser

import (
	"fmt"

	"github.com/tebeka/selenium"

	"webtest-go/config"
)

// Service is a running local driver process that must be stopped when the
// session it serves ends. selenium.Service satisfies it.
type Service interface {
	Stop() error
}

// ServiceStarter launches the local driver service for a family and returns
// the handle plus the WebDriver endpoint URL sessions should connect to.
// Injectable so factory behavior is testable without driver binaries.
type ServiceStarter func(family Family, cfg *config.Set) (Service, string, error)

// Per-family defaults for the local driver service binary and port.
func defaultDriverBinary(family Family) string {
	switch family {
	case FamilyFirefox:
		return "geckodriver"
	case FamilyEdge:
		return "msedgedriver"
	default:
		return "chromedriver"
	}
}

func defaultDriverPort(family Family) int {
	if family == FamilyFirefox {
		return 4444
	}
	return 9515
}

// defaultSafariDriverURL is used when safari_driver_url is not configured.
// safaridriver has no programmatic launcher in the automation library, so
// local Safari sessions attach to an instance started out of band
// (safaridriver --port 4445).
const defaultSafariDriverURL = "http://localhost:4445"

// StartDriverService is the default ServiceStarter. Chromium-family
// browsers go through the chromedriver service launcher (msedgedriver
// speaks the same protocol and flags), Firefox through geckodriver, and
// Safari attaches to an already-running safaridriver without starting
// anything.
func StartDriverService(family Family, cfg *config.Set) (Service, string, error) {
	if family == FamilySafari {
		return nil, cfg.GetDefault(config.KeySafariDriverURL, defaultSafariDriverURL), nil
	}

	path := cfg.GetDefault(config.KeyDriverPath, defaultDriverBinary(family))
	port := cfg.Int(config.KeyDriverPort, defaultDriverPort(family))

	switch family {
	case FamilyFirefox:
		svc, err := selenium.NewGeckoDriverService(path, port)
		if err != nil {
			return nil, "", err
		}
		return svc, fmt.Sprintf("http://localhost:%d", port), nil
	default:
		svc, err := selenium.NewChromeDriverService(path, port)
		if err != nil {
			return nil, "", err
		}
		// The chromedriver launcher starts the binary with
		// --url-base=wd/hub, so sessions connect under that prefix.
		return svc, fmt.Sprintf("http://localhost:%d/wd/hub", port), nil
	}
}

package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jojokiddiestv2025-boop/Gracegather/internal/models"
)

// Cloud prints the cloud sync configuration with the credential masked.
func (a *App) Cloud(ctx context.Context) error {
	s := a.gw.CloudSettings(ctx)
	if s == nil || !s.Enabled {
		fmt.Println("Cloud sync is disabled. Use 'setcloud' to configure it.")
		return nil
	}
	key := "not set"
	if s.APIKey != "" {
		key = "set"
	}
	fmt.Printf("Cloud sync enabled via %s (bin %s, api key %s).\n", s.Provider, s.BinID, key)
	return nil
}

// SetCloud interactively configures the cloud mirror. Entering an empty
// answer to the enable prompt turns sync off.
func (a *App) SetCloud(ctx context.Context) error {
	answer, err := getSimpleText(a.reader, "Enable cloud sync? (y/N)", os.Stdout)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
		if err := a.gw.SaveCloudSettings(ctx, &models.CloudSettings{Enabled: false}); err != nil {
			return err
		}
		fmt.Println("Cloud sync disabled.")
		return nil
	}

	apiKey, err := getSimpleText(a.reader, "API key", os.Stdout)
	if err != nil {
		return err
	}
	binID, err := getSimpleText(a.reader, "Bin id", os.Stdout)
	if err != nil {
		return err
	}
	if apiKey == "" || binID == "" {
		fmt.Println("Both an API key and a bin id are required.")
		return nil
	}

	s := &models.CloudSettings{
		Enabled:  true,
		Provider: models.ProviderJSONBin,
		APIKey:   apiKey,
		BinID:    binID,
	}
	if err := a.gw.SaveCloudSettings(ctx, s); err != nil {
		return err
	}
	fmt.Println("Cloud sync enabled.")
	return nil
}

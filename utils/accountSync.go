package utils

import (
	"log"
	"time"

	"lms/config"
	"lms/models"

	"github.com/go-resty/resty/v2"
)

// SyncAccount pushes a newly registered account to the external sync
// endpoint, when one is configured. Fire-and-forget; the registration
// response never waits on it.
func SyncAccount(account models.Account) {
	if config.AppConfig.AccountSyncURL == "" {
		return
	}

	client := resty.New().SetTimeout(10 * time.Second)

	resp, err := client.R().
		SetBody(map[string]interface{}{
			"id":           account.ID.String(),
			"username":     account.Username,
			"email":        account.Email,
			"is_superuser": account.IsSuperuser,
		}).
		Post(config.AppConfig.AccountSyncURL)
	if err != nil {
		log.Printf("Error syncing account %s to external server: %v", account.Email, err)
		return
	}

	if resp.IsError() {
		log.Printf("External account sync failed for %s: %s", account.Email, resp.Status())
	} else {
		log.Printf("Account synced successfully to external server: %s", account.Email)
	}
}

package main

import (
	hfadapter "github.com/pouyakarimi/zendegi/internal/adapter/driven/huggingface"
	supabaseadapter "github.com/pouyakarimi/zendegi/internal/adapter/driven/supabase"
	"github.com/pouyakarimi/zendegi/internal/domain/port/driven"
)

// A nil *Client stored in an interface is non-nil to the == operator, so each
// port gets its own guard that returns a true nil interface when the adapter
// is absent.

func nilIfAbsentAuth(c *supabaseadapter.Client) driven.AuthClient {
	if c == nil {
		return nil
	}
	return c
}

func nilIfAbsentFinance(c *supabaseadapter.Client) driven.FinanceStore {
	if c == nil {
		return nil
	}
	return c
}

func nilIfAbsentHealth(c *supabaseadapter.Client) driven.HealthStore {
	if c == nil {
		return nil
	}
	return c
}

func nilIfAbsentCalendar(c *supabaseadapter.Client) driven.CalendarStore {
	if c == nil {
		return nil
	}
	return c
}

func nilIfAbsentGenerator(c *hfadapter.Client) driven.TextGenerator {
	if c == nil {
		return nil
	}
	return c
}

func nilIfAbsentTranscriber(c *hfadapter.Client) driven.Transcriber {
	if c == nil {
		return nil
	}
	return c
}

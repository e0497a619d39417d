package config

import (
	"encoding/json"
	"os"
	"time"
)

type settingsJSON struct {
	RefreshInterval *string `json:"refresh_interval"` // "2s"

	ShowCPU      *bool `json:"show_cpu"`
	ShowMemory   *bool `json:"show_memory"`
	ShowSwap     *bool `json:"show_swap"`
	ShowDownload *bool `json:"show_download"`
	ShowUpload   *bool `json:"show_upload"`

	CPULabel      *string `json:"cpu_label"`
	MemoryLabel   *string `json:"memory_label"`
	SwapLabel     *string `json:"swap_label"`
	DownloadLabel *string `json:"download_label"`
	UploadLabel   *string `json:"upload_label"`
	Separator     *string `json:"separator"`

	ExtraSpacing *bool `json:"extra_spacing"`
	ShowPercent  *bool `json:"show_percent"`
	ShowFullUnit *bool `json:"show_full_unit"`

	FontFamily *string `json:"font_family"`
	FontSize   *int    `json:"font_size"`
	Color      *string `json:"color"`
	Bold       *bool   `json:"bold"`
}

func loadSettingsJSON(path string) (*settingsJSON, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var js settingsJSON
	return &js, json.Unmarshal(b, &js)
}

func applySettingsJSON(s *Settings, js *settingsJSON) {
	if js.RefreshInterval != nil {
		if sec, err := parseDurationSeconds(*js.RefreshInterval); err == nil {
			s.RefreshInterval = sec
		}
	}

	if js.ShowCPU != nil {
		s.ShowCPU = *js.ShowCPU
	}
	if js.ShowMemory != nil {
		s.ShowMemory = *js.ShowMemory
	}
	if js.ShowSwap != nil {
		s.ShowSwap = *js.ShowSwap
	}
	if js.ShowDownload != nil {
		s.ShowDownload = *js.ShowDownload
	}
	if js.ShowUpload != nil {
		s.ShowUpload = *js.ShowUpload
	}

	if js.CPULabel != nil {
		s.CPULabel = *js.CPULabel
	}
	if js.MemoryLabel != nil {
		s.MemoryLabel = *js.MemoryLabel
	}
	if js.SwapLabel != nil {
		s.SwapLabel = *js.SwapLabel
	}
	if js.DownloadLabel != nil {
		s.DownloadLabel = *js.DownloadLabel
	}
	if js.UploadLabel != nil {
		s.UploadLabel = *js.UploadLabel
	}
	if js.Separator != nil {
		s.Separator = *js.Separator
	}

	if js.ExtraSpacing != nil {
		s.ExtraSpacing = *js.ExtraSpacing
	}
	if js.ShowPercent != nil {
		s.ShowPercent = *js.ShowPercent
	}
	if js.ShowFullUnit != nil {
		s.ShowFullUnit = *js.ShowFullUnit
	}

	if js.FontFamily != nil {
		s.FontFamily = *js.FontFamily
	}
	if js.FontSize != nil {
		s.FontSize = *js.FontSize
	}
	if js.Color != nil {
		s.Color = *js.Color
	}
	if js.Bold != nil {
		s.Bold = *js.Bold
	}
}

func parseDurationSeconds(s string) (int, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	return int(d / time.Second), nil
}

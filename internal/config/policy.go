package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/shenikar/drive_journal/internal/models"
)

// LoadPolicyDefaults читает политику по умолчанию из файла (yaml/json) и переменных POLICY_*.
// Используется, пока в базе нет сохраненной политики. Пустой path - только ENV
func LoadPolicyDefaults(path string) (*models.Policy, error) {
	v := viper.New()
	v.SetEnvPrefix("policy")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv видит только известные ключи
	for _, key := range []string{
		"work_hours_start", "work_hours_end", "work_days", "timezone",
		"auto_approve_km", "purpose_required_km",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind policy env %s: %w", key, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading policy file: %w", err)
		}
	}

	policy := &models.Policy{}
	if s := v.GetString("work_hours_start"); s != "" {
		policy.WorkHoursStart = &s
	}
	if s := v.GetString("work_hours_end"); s != "" {
		policy.WorkHoursEnd = &s
	}
	if s := v.GetString("timezone"); s != "" {
		policy.Timezone = &s
	}
	if v.IsSet("work_days") {
		days, err := workDays(v.Get("work_days"))
		if err != nil {
			return nil, err
		}
		policy.WorkDays = days
	}
	if v.IsSet("auto_approve_km") {
		km := v.GetFloat64("auto_approve_km")
		policy.AutoApproveKm = &km
	}
	if v.IsSet("purpose_required_km") {
		km := v.GetFloat64("purpose_required_km")
		policy.PurposeRequiredKm = &km
	}
	if v.IsSet("offices") {
		if err := v.UnmarshalKey("offices", &policy.Offices); err != nil {
			return nil, fmt.Errorf("unable to decode offices: %w", err)
		}
	}

	return policy, nil
}

// workDays принимает список из файла или строку "1,2,3" из ENV
func workDays(raw any) ([]int, error) {
	switch val := raw.(type) {
	case string:
		var days []int
		for _, part := range strings.Split(val, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			d, err := strconv.Atoi(part)
			if err != nil {
				return nil, fmt.Errorf("invalid work day %q: %w", part, err)
			}
			days = append(days, d)
		}
		return days, nil
	case []any:
		days := make([]int, 0, len(val))
		for _, item := range val {
			d, err := strconv.Atoi(fmt.Sprint(item))
			if err != nil {
				return nil, fmt.Errorf("invalid work day %v: %w", item, err)
			}
			days = append(days, d)
		}
		return days, nil
	case []int:
		return val, nil
	}
	return nil, fmt.Errorf("unsupported work_days value %v", raw)
}

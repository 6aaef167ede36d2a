package commands

import (
	"errors"
	"fmt"

	"solarsync/lib/configutil"
	"solarsync/lib/platforms/aurora"
	"solarsync/lib/platforms/quickbase"
	"solarsync/lib/restyutil"
	"solarsync/lib/serviceutil"
	"solarsync/services/designsync"
)

const DefaultRealmHostname = "betterearthsolar.quickbase.com"

type Config struct {
	TenantId    string `json:"tenant_id"`
	BearerToken string `json:"bearer_token"`
	// quickbase user token
	Auth       string               `json:"auth"`
	TableId    string               `json:"table_id"`
	ProjectIds []designsync.Project `json:"project_ids"`

	AuroraBaseUrl    string `json:"aurora_base_url"`
	QuickbaseBaseUrl string `json:"quickbase_base_url"`
	RealmHostname    string `json:"realm_hostname"`
	// the literal written to the module name field of every record
	ModuleName string `json:"module_name"`
	// defaults to every field a record carries
	FieldsToReturn []int `json:"fields_to_return"`
}

func (c Config) Validate() error {
	var errs []error
	if c.TenantId == "" {
		errs = append(errs, errors.New("tenant_id is required"))
	}
	if c.BearerToken == "" {
		errs = append(errs, errors.New("bearer_token is required"))
	}
	if c.Auth == "" {
		errs = append(errs, errors.New("auth is required"))
	}
	if c.TableId == "" {
		errs = append(errs, errors.New("table_id is required"))
	}
	if len(c.ProjectIds) == 0 {
		errs = append(errs, errors.New("project_ids must list at least one project"))
	}
	seen := map[string]bool{}
	for i, p := range c.ProjectIds {
		if p.Id == "" {
			errs = append(errs, fmt.Errorf("project_ids[%d].id is required", i))
			continue
		}
		if seen[p.Id] {
			errs = append(errs, fmt.Errorf("project_ids[%d]: duplicate project %s", i, p.Id))
		}
		seen[p.Id] = true
	}
	return errors.Join(errs...)
}

func (c Config) WithDefaults() Config {
	if c.AuroraBaseUrl == "" {
		c.AuroraBaseUrl = aurora.DefaultBaseUrl
	}
	if c.QuickbaseBaseUrl == "" {
		c.QuickbaseBaseUrl = quickbase.DefaultBaseUrl
	}
	if c.RealmHostname == "" {
		c.RealmHostname = DefaultRealmHostname
	}
	if c.ModuleName == "" {
		c.ModuleName = designsync.DefaultModuleName
	}
	if len(c.FieldsToReturn) == 0 {
		c.FieldsToReturn = designsync.ColumnIds()
	}
	return c
}

// SelectProjects returns the configured projects whose id is in ids, in
// configuration order. No ids selects every project.
func (c Config) SelectProjects(ids []string) ([]designsync.Project, error) {
	if len(ids) == 0 {
		return c.ProjectIds, nil
	}

	wanted := map[string]bool{}
	for _, id := range ids {
		wanted[id] = true
	}
	var out []designsync.Project
	for _, p := range c.ProjectIds {
		if wanted[p.Id] {
			out = append(out, p)
			delete(wanted, p.Id)
		}
	}
	if len(wanted) > 0 {
		var errs []error
		for _, id := range ids {
			if wanted[id] {
				errs = append(errs, fmt.Errorf("project %s is not in project_ids", id))
			}
		}
		return nil, errors.Join(errs...)
	}
	return out, nil
}

func (c Config) Formatter() designsync.Formatter {
	return designsync.Formatter{
		TableId:        c.TableId,
		FieldsToReturn: c.FieldsToReturn,
		ModuleName:     c.ModuleName,
	}
}

func (c Config) AuroraClient(output restyutil.InstrumentOutput) *aurora.Client {
	return aurora.NewClient(aurora.ClientOptions{
		BaseUrl:     c.AuroraBaseUrl,
		TenantId:    c.TenantId,
		BearerToken: c.BearerToken,
		Output:      output,
	})
}

func (c Config) QuickbaseClient(output restyutil.InstrumentOutput) *quickbase.Client {
	return quickbase.NewClient(quickbase.ClientOptions{
		BaseUrl:       c.QuickbaseBaseUrl,
		RealmHostname: c.RealmHostname,
		UserToken:     c.Auth,
		Output:        output,
	})
}

func readConfig(path string) (Config, error) {
	cfg, err := configutil.ReadConfig[Config](path)
	if err != nil {
		return Config{}, err
	}
	return cfg.WithDefaults(), nil
}

// mustReadConfig stops the process before any project is attempted when
// the configuration cannot be used.
func mustReadConfig() Config {
	cfg, err := readConfig(configPath)
	if err != nil {
		serviceutil.Fatal("failed to read config", err)
	}
	return cfg
}

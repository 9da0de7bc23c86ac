package evergreen

import (
	"encoding/json"
	"fmt"
)

// Distro providers with structured settings.
const (
	ProviderAWSAuto     = "ec2-auto"
	ProviderAWSOnDemand = "ec2-ondemand"
	ProviderDocker      = "docker"
	ProviderStatic      = "static"
)

// MountPoint is one mount point of an AWS distro.
type MountPoint struct {
	DeviceName  string `json:"device_name"`
	Size        int    `json:"size"`
	VirtualName string `json:"virtual_name"`
}

// DistroHost names one host of a static distro.
type DistroHost struct {
	Name string `json:"name"`
}

// StaticDistroSettings are the provider settings of a static distro.
type StaticDistroSettings struct {
	Hosts []DistroHost `json:"hosts"`
}

// HostList returns the names of the distro's hosts.
func (s *StaticDistroSettings) HostList() []string {
	names := make([]string, 0, len(s.Hosts))
	for _, h := range s.Hosts {
		names = append(names, h.Name)
	}
	return names
}

// DockerDistroSettings are the provider settings of a docker distro.
type DockerDistroSettings struct {
	ImageURL string `json:"image_url"`
}

// AWSDistroSettings are the provider settings of an EC2 distro.
type AWSDistroSettings struct {
	AMI              string       `json:"ami"`
	BidPrice         float64      `json:"bid_price"`
	InstanceType     string       `json:"instance_type"`
	IPv6             bool         `json:"ipv6"`
	IsVPC            bool         `json:"is_vpc"`
	KeyName          string       `json:"key_name"`
	MountPoints      []MountPoint `json:"mount_points"`
	Region           string       `json:"region"`
	SecurityGroup    string       `json:"security_group"`
	SecurityGroupIDs []string     `json:"security_group_ids"`
	SubnetID         string       `json:"subnet_id"`
	VPCName          string       `json:"vpc_name"`
}

// PlannerSettings control how tasks are planned onto the distro.
type PlannerSettings struct {
	Version                string `json:"version"`
	MinimumHosts           int    `json:"minimum_hosts"`
	MaximumHosts           int    `json:"maximum_hosts"`
	TargetTime             int    `json:"target_time"`
	AcceptableHostIdleTime int    `json:"acceptable_host_idle_time"`
	GroupVersions          bool   `json:"group_versions"`
	PatchZipperFactor      int    `json:"patch_zipper_factor"`
	TaskOrdering           string `json:"task_ordering"`
}

// FinderSettings control how runnable tasks are found for the distro.
type FinderSettings struct {
	Version string `json:"version"`
}

// DistroExpansion is one key/value expansion defined on a distro.
type DistroExpansion struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Distro is one machine configuration tasks can run on.
type Distro struct {
	Name                string            `json:"name"`
	UserSpawnAllowed    bool              `json:"user_spawn_allowed"`
	Provider            string            `json:"provider"`
	ImageID             string            `json:"image_id"`
	Arch                string            `json:"arch"`
	WorkDir             string            `json:"work_dir"`
	PoolSize            int               `json:"pool_size"`
	SetupAsSudo         bool              `json:"setup_as_sudo"`
	Setup               string            `json:"setup"`
	Teardown            string            `json:"teardown"`
	User                string            `json:"user"`
	BootstrapMethod     string            `json:"bootstrap_method"`
	CommunicationMethod string            `json:"communication_method"`
	CloneMethod         string            `json:"clone_method"`
	ShellPath           string            `json:"shell_path"`
	SSHKey              string            `json:"ssh_key"`
	SSHOptions          []string          `json:"ssh_options"`
	Disabled            bool              `json:"disabled"`
	ContainerPool       string            `json:"container_pool"`
	Expansions          []DistroExpansion `json:"expansions"`
	PlannerSettings     *PlannerSettings  `json:"planner_settings"`
	FinderSettings      *FinderSettings   `json:"finder_settings"`
	Settings            json.RawMessage   `json:"settings"`
}

// ExpansionMap returns the distro expansions as a map.
func (d *Distro) ExpansionMap() map[string]string {
	m := make(map[string]string, len(d.Expansions))
	for _, exp := range d.Expansions {
		m[exp.Key] = exp.Value
	}
	return m
}

// AWSSettings decodes the provider settings of an EC2 distro.
func (d *Distro) AWSSettings() (*AWSDistroSettings, error) {
	if d.Provider != ProviderAWSAuto && d.Provider != ProviderAWSOnDemand {
		return nil, fmt.Errorf("%w: distro %s has provider %s", ErrInvalidArguments, d.Name, d.Provider)
	}
	return decodeSettings[AWSDistroSettings](d)
}

// DockerSettings decodes the provider settings of a docker distro.
func (d *Distro) DockerSettings() (*DockerDistroSettings, error) {
	if d.Provider != ProviderDocker {
		return nil, fmt.Errorf("%w: distro %s has provider %s", ErrInvalidArguments, d.Name, d.Provider)
	}
	return decodeSettings[DockerDistroSettings](d)
}

// StaticSettings decodes the provider settings of a static distro.
func (d *Distro) StaticSettings() (*StaticDistroSettings, error) {
	if d.Provider != ProviderStatic {
		return nil, fmt.Errorf("%w: distro %s has provider %s", ErrInvalidArguments, d.Name, d.Provider)
	}
	return decodeSettings[StaticDistroSettings](d)
}

func decodeSettings[T any](d *Distro) (*T, error) {
	if len(d.Settings) == 0 {
		return nil, nil
	}
	settings := new(T)
	if err := json.Unmarshal(d.Settings, settings); err != nil {
		return nil, fmt.Errorf("decoding settings for distro %s: %w", d.Name, err)
	}
	return settings, nil
}

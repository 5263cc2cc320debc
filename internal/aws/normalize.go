package aws

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	asgtypes "github.com/aws/aws-sdk-go-v2/service/autoscaling/types"

	pkgtypes "github.com/vietdv277/asgcfg/pkg/types"
)

// toGroupConfig maps the AWS attribute names of a raw group record onto the
// stable GroupConfig schema. AWS exposes no placement-group attribute, so
// GroupConfig carries no such field. ScalingPolicies and ScheduledActions
// are filled in by the caller from their own API calls.
func toGroupConfig(g asgtypes.AutoScalingGroup) pkgtypes.GroupConfig {
	return pkgtypes.GroupConfig{
		Name:                deref(g.AutoScalingGroupName),
		AvailabilityZones:   g.AvailabilityZones,
		DefaultCooldown:     deref32(g.DefaultCooldown),
		DesiredCapacity:     deref32(g.DesiredCapacity),
		HealthCheckPeriod:   deref32(g.HealthCheckGracePeriod),
		HealthCheckType:     deref(g.HealthCheckType),
		LaunchConfigName:    deref(g.LaunchConfigurationName),
		LoadBalancers:       g.LoadBalancerNames,
		MaxSize:             deref32(g.MaxSize),
		MinSize:             deref32(g.MinSize),
		VPCZoneIdentifier:   splitZoneIdentifier(g.VPCZoneIdentifier),
		Tags:                toTags(g.Tags),
		TerminationPolicies: g.TerminationPolicies,
		SuspendedProcesses:  sortedProcessNames(g.SuspendedProcesses),
	}
}

// toTags expands tag descriptions in AWS order.
func toTags(tags []asgtypes.TagDescription) []pkgtypes.Tag {
	out := make([]pkgtypes.Tag, 0, len(tags))
	for _, t := range tags {
		out = append(out, pkgtypes.Tag{
			Key:               deref(t.Key),
			Value:             deref(t.Value),
			PropagateAtLaunch: derefBool(t.PropagateAtLaunch),
		})
	}
	return out
}

// splitZoneIdentifier normalizes the VPC zone identifier to a string slice.
// AWS returns a comma-joined string today, but a native list is tolerated
// and passed through unchanged.
func splitZoneIdentifier(v any) []string {
	switch z := v.(type) {
	case nil:
		return nil
	case []string:
		return z
	case *string:
		if z == nil {
			return nil
		}
		return strings.Split(*z, ",")
	case string:
		return strings.Split(z, ",")
	default:
		return nil
	}
}

// sortedProcessNames extracts process names sorted ascending.
func sortedProcessNames(procs []asgtypes.SuspendedProcess) []string {
	names := make([]string, 0, len(procs))
	for _, p := range procs {
		names = append(names, deref(p.ProcessName))
	}
	sort.Strings(names)
	return names
}

// toScalingPolicy projects a single scaling policy.
func toScalingPolicy(p asgtypes.ScalingPolicy) pkgtypes.ScalingPolicy {
	return pkgtypes.ScalingPolicy{
		Name:              deref(p.PolicyName),
		AdjustmentType:    deref(p.AdjustmentType),
		ScalingAdjustment: deref32(p.ScalingAdjustment),
		MinAdjustmentStep: deref32(p.MinAdjustmentStep),
		Cooldown:          deref32(p.Cooldown),
	}
}

// toScheduledAction projects a scheduled action, returning its name as the
// map key. Timestamps become RFC 3339 strings; a missing end time stays nil.
func toScheduledAction(a asgtypes.ScheduledUpdateGroupAction) (string, pkgtypes.ScheduledAction, error) {
	capacity, err := coerceCapacity(a.DesiredCapacity)
	if err != nil {
		return "", pkgtypes.ScheduledAction{}, &ProviderError{
			Kind:    KindMalformedResponse,
			Message: fmt.Sprintf("scheduled action %s: %v", deref(a.ScheduledActionName), err),
			Err:     err,
		}
	}

	action := pkgtypes.ScheduledAction{
		MinSize:         deref32(a.MinSize),
		MaxSize:         deref32(a.MaxSize),
		DesiredCapacity: capacity,
		Recurrence:      deref(a.Recurrence),
	}

	if a.StartTime != nil {
		action.StartTime = a.StartTime.UTC().Format(time.RFC3339)
	}
	if a.EndTime != nil {
		end := a.EndTime.UTC().Format(time.RFC3339)
		action.EndTime = &end
	}

	return deref(a.ScheduledActionName), action, nil
}

// coerceCapacity forces a desired capacity value to an integer. AWS has
// historically returned the scheduled-action capacity in inconsistent
// numeric shapes, so numeric strings and float-like values are accepted.
func coerceCapacity(v any) (int, error) {
	switch n := v.(type) {
	case nil:
		return 0, nil
	case int:
		return n, nil
	case int32:
		return int(n), nil
	case *int32:
		if n == nil {
			return 0, nil
		}
		return int(*n), nil
	case int64:
		return int(n), nil
	case float32:
		return int(n), nil
	case float64:
		return int(n), nil
	case string:
		if i, err := strconv.Atoi(n); err == nil {
			return i, nil
		}
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, fmt.Errorf("desired capacity %q is not numeric", n)
		}
		return int(f), nil
	default:
		return 0, fmt.Errorf("desired capacity has unsupported type %T", v)
	}
}

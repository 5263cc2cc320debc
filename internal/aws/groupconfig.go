package aws

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/autoscaling"
	asgtypes "github.com/aws/aws-sdk-go-v2/service/autoscaling/types"

	pkgtypes "github.com/vietdv277/asgcfg/pkg/types"
)

const (
	// describeAttempts bounds the describe call when AWS keeps throttling.
	describeAttempts = 30
	throttleDelay    = 5 * time.Second
)

// FetchGroupConfig returns the normalized configuration of the named Auto
// Scaling Group: its attributes, scaling policies, and scheduled actions
// merged into one record.
//
// A nil config with a nil error means the group does not exist, or the
// describe call failed in a way that was logged and swallowed (throttle
// exhaustion, any other provider error). A non-nil error only comes from
// the policy and scheduled-action lookups, which are not retried.
func (c *Client) FetchGroupConfig(name string) (*pkgtypes.GroupConfig, error) {
	group, ok := c.describeGroup(name)
	if !ok {
		return nil, nil
	}

	config := toGroupConfig(group)

	policies, err := c.fetchScalingPolicies(name)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch scaling policies for %s: %w", name, err)
	}
	config.ScalingPolicies = policies

	actions, err := c.fetchScheduledActions(name)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch scheduled actions for %s: %w", name, err)
	}
	config.ScheduledActions = actions

	return &config, nil
}

// describeGroup pages through the describe call for a single group name,
// retrying on throttling with a fixed delay. The first matching record
// wins if AWS ever returns more than one.
func (c *Client) describeGroup(name string) (asgtypes.AutoScalingGroup, bool) {
	for attempt := 1; ; attempt++ {
		groups, err := c.describeAllPages(name)
		if err == nil {
			if len(groups) == 0 {
				slog.Debug("autoscaling group not found",
					"group", name, "kind", KindNotFound.String())
				return asgtypes.AutoScalingGroup{}, false
			}
			return groups[0], true
		}

		if isThrottle(err) && attempt < describeAttempts {
			slog.Debug("throttled by AWS API, retrying",
				"group", name, "attempt", attempt, "delay", throttleDelay)
			c.sleep(throttleDelay)
			continue
		}

		pe := classify(err)
		slog.Error("failed to describe autoscaling group",
			"group", name, "kind", pe.Kind.String(), "error", pe.Message)
		return asgtypes.AutoScalingGroup{}, false
	}
}

// describeAllPages accumulates every page of the describe response. AWS may
// page even for a single-name query.
func (c *Client) describeAllPages(name string) ([]asgtypes.AutoScalingGroup, error) {
	var groups []asgtypes.AutoScalingGroup
	var nextToken *string

	for {
		output, err := c.ASG.DescribeAutoScalingGroups(c.ctx, &autoscaling.DescribeAutoScalingGroupsInput{
			AutoScalingGroupNames: []string{name},
			NextToken:             nextToken,
		})
		if err != nil {
			return nil, err
		}

		groups = append(groups, output.AutoScalingGroups...)

		if output.NextToken == nil {
			return groups, nil
		}
		nextToken = output.NextToken
	}
}

// fetchScalingPolicies returns the group's scaling policies in AWS order.
func (c *Client) fetchScalingPolicies(name string) ([]pkgtypes.ScalingPolicy, error) {
	policies := []pkgtypes.ScalingPolicy{}
	var nextToken *string

	for {
		output, err := c.ASG.DescribePolicies(c.ctx, &autoscaling.DescribePoliciesInput{
			AutoScalingGroupName: &name,
			NextToken:            nextToken,
		})
		if err != nil {
			return nil, classify(err)
		}

		for _, p := range output.ScalingPolicies {
			policies = append(policies, toScalingPolicy(p))
		}

		if output.NextToken == nil {
			return policies, nil
		}
		nextToken = output.NextToken
	}
}

// fetchScheduledActions returns the group's scheduled actions keyed by
// action name. AWS does not define behavior for duplicate names; the last
// one returned wins.
func (c *Client) fetchScheduledActions(name string) (map[string]pkgtypes.ScheduledAction, error) {
	actions := map[string]pkgtypes.ScheduledAction{}
	var nextToken *string

	for {
		output, err := c.ASG.DescribeScheduledActions(c.ctx, &autoscaling.DescribeScheduledActionsInput{
			AutoScalingGroupName: &name,
			NextToken:            nextToken,
		})
		if err != nil {
			return nil, classify(err)
		}

		for _, a := range output.ScheduledUpdateGroupActions {
			actionName, action, err := toScheduledAction(a)
			if err != nil {
				return nil, err
			}
			actions[actionName] = action
		}

		if output.NextToken == nil {
			return actions, nil
		}
		nextToken = output.NextToken
	}
}

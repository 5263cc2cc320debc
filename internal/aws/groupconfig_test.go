package aws

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/autoscaling"
	asgtypes "github.com/aws/aws-sdk-go-v2/service/autoscaling/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgtypes "github.com/vietdv277/asgcfg/pkg/types"
)

func describeInput(name string) *autoscaling.DescribeAutoScalingGroupsInput {
	return &autoscaling.DescribeAutoScalingGroupsInput{
		AutoScalingGroupNames: []string{name},
	}
}

func emptyDescribeOutput() *autoscaling.DescribeAutoScalingGroupsOutput {
	return &autoscaling.DescribeAutoScalingGroupsOutput{}
}

func throttleErr() error {
	return &smithy.GenericAPIError{Code: "Throttling", Message: "Rate exceeded"}
}

// TestFetchGroupConfig_NotFound verifies that a group with no matching
// record yields a nil config without error, sleeps, or retries.
func TestFetchGroupConfig_NotFound(t *testing.T) {
	mockSvc := &mockAutoscalingAPI{}
	mockSvc.On("DescribeAutoScalingGroups", context.TODO(), describeInput("missing-asg")).
		Return(emptyDescribeOutput(), nil)

	sleeps := 0
	client := newTestClient(mockSvc, &sleeps)

	cfg, err := client.FetchGroupConfig("missing-asg")

	require.NoError(t, err)
	assert.Nil(t, cfg)
	assert.Zero(t, sleeps)
	assert.Len(t, mockSvc.Calls, 1)
}

// TestFetchGroupConfig_EndToEnd runs the full describe/policies/actions
// flow against a representative group and checks the normalized record.
func TestFetchGroupConfig_EndToEnd(t *testing.T) {
	start := time.Date(2024, 3, 1, 2, 0, 0, 0, time.UTC)

	mockSvc := &mockAutoscalingAPI{}
	mockSvc.On("DescribeAutoScalingGroups", context.TODO(), describeInput("web-asg")).
		Return(&autoscaling.DescribeAutoScalingGroupsOutput{
			AutoScalingGroups: []asgtypes.AutoScalingGroup{
				{
					AutoScalingGroupName:    aws.String("web-asg"),
					AvailabilityZones:       []string{"us-east-1a", "us-east-1b"},
					DefaultCooldown:         aws.Int32(300),
					DesiredCapacity:         aws.Int32(4),
					HealthCheckGracePeriod:  aws.Int32(120),
					HealthCheckType:         aws.String("EC2"),
					LaunchConfigurationName: aws.String("web-lc"),
					LoadBalancerNames:       []string{"web-elb"},
					MaxSize:                 aws.Int32(10),
					MinSize:                 aws.Int32(2),
					VPCZoneIdentifier:       aws.String("subnet-a,subnet-b"),
					Tags: []asgtypes.TagDescription{
						{Key: aws.String("env"), Value: aws.String("prod"), PropagateAtLaunch: aws.Bool(true)},
					},
					TerminationPolicies: []string{"Default"},
					SuspendedProcesses: []asgtypes.SuspendedProcess{
						{ProcessName: aws.String("Launch")},
						{ProcessName: aws.String("AddToLoadBalancer")},
					},
				},
			},
		}, nil)

	mockSvc.On("DescribePolicies", context.TODO(), &autoscaling.DescribePoliciesInput{
		AutoScalingGroupName: aws.String("web-asg"),
	}).Return(&autoscaling.DescribePoliciesOutput{}, nil)

	mockSvc.On("DescribeScheduledActions", context.TODO(), &autoscaling.DescribeScheduledActionsInput{
		AutoScalingGroupName: aws.String("web-asg"),
	}).Return(&autoscaling.DescribeScheduledActionsOutput{
		ScheduledUpdateGroupActions: []asgtypes.ScheduledUpdateGroupAction{
			{
				ScheduledActionName: aws.String("nightly-scale"),
				MinSize:             aws.Int32(1),
				MaxSize:             aws.Int32(5),
				DesiredCapacity:     aws.Int32(3),
				StartTime:           aws.Time(start),
				Recurrence:          aws.String("0 2 * * *"),
			},
		},
	}, nil)

	client := newTestClient(mockSvc, nil)

	cfg, err := client.FetchGroupConfig("web-asg")

	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "web-asg", cfg.Name)
	assert.Equal(t, []string{"us-east-1a", "us-east-1b"}, cfg.AvailabilityZones)
	assert.Equal(t, int32(300), cfg.DefaultCooldown)
	assert.Equal(t, int32(4), cfg.DesiredCapacity)
	assert.Equal(t, int32(120), cfg.HealthCheckPeriod)
	assert.Equal(t, "EC2", cfg.HealthCheckType)
	assert.Equal(t, "web-lc", cfg.LaunchConfigName)
	assert.Equal(t, []string{"web-elb"}, cfg.LoadBalancers)
	assert.Equal(t, int32(10), cfg.MaxSize)
	assert.Equal(t, int32(2), cfg.MinSize)
	assert.Equal(t, []string{"subnet-a", "subnet-b"}, cfg.VPCZoneIdentifier)
	assert.Equal(t, []pkgtypes.Tag{{Key: "env", Value: "prod", PropagateAtLaunch: true}}, cfg.Tags)
	assert.Equal(t, []string{"Default"}, cfg.TerminationPolicies)
	assert.Equal(t, []string{"AddToLoadBalancer", "Launch"}, cfg.SuspendedProcesses)
	assert.Equal(t, []pkgtypes.ScalingPolicy{}, cfg.ScalingPolicies)

	require.Contains(t, cfg.ScheduledActions, "nightly-scale")
	action := cfg.ScheduledActions["nightly-scale"]
	assert.Equal(t, int32(1), action.MinSize)
	assert.Equal(t, int32(5), action.MaxSize)
	assert.Equal(t, 3, action.DesiredCapacity)
	assert.Equal(t, "2024-03-01T02:00:00Z", action.StartTime)
	assert.Nil(t, action.EndTime)
	assert.Equal(t, "0 2 * * *", action.Recurrence)

	mockSvc.AssertExpectations(t)
}

// TestFetchGroupConfig_PaginatedDescribe verifies that all describe pages
// are accumulated and the first record wins.
func TestFetchGroupConfig_PaginatedDescribe(t *testing.T) {
	mockSvc := &mockAutoscalingAPI{}
	mockSvc.On("DescribeAutoScalingGroups", context.TODO(), describeInput("web-asg")).
		Return(&autoscaling.DescribeAutoScalingGroupsOutput{
			NextToken: aws.String("page2"),
		}, nil)
	mockSvc.On("DescribeAutoScalingGroups", context.TODO(), &autoscaling.DescribeAutoScalingGroupsInput{
		AutoScalingGroupNames: []string{"web-asg"},
		NextToken:             aws.String("page2"),
	}).Return(&autoscaling.DescribeAutoScalingGroupsOutput{
		AutoScalingGroups: []asgtypes.AutoScalingGroup{
			{AutoScalingGroupName: aws.String("web-asg"), MinSize: aws.Int32(1)},
			{AutoScalingGroupName: aws.String("web-asg-shadow"), MinSize: aws.Int32(9)},
		},
	}, nil)

	mockSvc.On("DescribePolicies", context.TODO(), &autoscaling.DescribePoliciesInput{
		AutoScalingGroupName: aws.String("web-asg"),
	}).Return(&autoscaling.DescribePoliciesOutput{}, nil)
	mockSvc.On("DescribeScheduledActions", context.TODO(), &autoscaling.DescribeScheduledActionsInput{
		AutoScalingGroupName: aws.String("web-asg"),
	}).Return(&autoscaling.DescribeScheduledActionsOutput{}, nil)

	client := newTestClient(mockSvc, nil)

	cfg, err := client.FetchGroupConfig("web-asg")

	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "web-asg", cfg.Name)
	assert.Equal(t, int32(1), cfg.MinSize)
}

// TestFetchGroupConfig_ThrottleThenSuccess verifies that throttling errors
// are retried with one sleep per throttle before the eventual success.
func TestFetchGroupConfig_ThrottleThenSuccess(t *testing.T) {
	mockSvc := &mockAutoscalingAPI{}
	mockSvc.On("DescribeAutoScalingGroups", context.TODO(), describeInput("web-asg")).
		Return(nil, throttleErr()).Times(3)
	mockSvc.On("DescribeAutoScalingGroups", context.TODO(), describeInput("web-asg")).
		Return(&autoscaling.DescribeAutoScalingGroupsOutput{
			AutoScalingGroups: []asgtypes.AutoScalingGroup{
				{AutoScalingGroupName: aws.String("web-asg")},
			},
		}, nil).Once()

	mockSvc.On("DescribePolicies", context.TODO(), &autoscaling.DescribePoliciesInput{
		AutoScalingGroupName: aws.String("web-asg"),
	}).Return(&autoscaling.DescribePoliciesOutput{}, nil)
	mockSvc.On("DescribeScheduledActions", context.TODO(), &autoscaling.DescribeScheduledActionsInput{
		AutoScalingGroupName: aws.String("web-asg"),
	}).Return(&autoscaling.DescribeScheduledActionsOutput{}, nil)

	sleeps := 0
	client := newTestClient(mockSvc, &sleeps)

	cfg, err := client.FetchGroupConfig("web-asg")

	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "web-asg", cfg.Name)
	assert.Equal(t, 3, sleeps)
}

// TestFetchGroupConfig_ThrottleExhausted verifies that a group that never
// stops throttling yields a nil config after exactly 30 describe attempts.
func TestFetchGroupConfig_ThrottleExhausted(t *testing.T) {
	mockSvc := &mockAutoscalingAPI{}
	mockSvc.On("DescribeAutoScalingGroups", context.TODO(), describeInput("web-asg")).
		Return(nil, throttleErr())

	sleeps := 0
	client := newTestClient(mockSvc, &sleeps)

	cfg, err := client.FetchGroupConfig("web-asg")

	require.NoError(t, err)
	assert.Nil(t, cfg)
	assert.Len(t, mockSvc.Calls, 30)
	assert.Equal(t, 29, sleeps)
}

// TestFetchGroupConfig_DescribeProviderError verifies that a non-throttle
// provider error on the describe call degrades to a nil config with no
// retries.
func TestFetchGroupConfig_DescribeProviderError(t *testing.T) {
	mockSvc := &mockAutoscalingAPI{}
	mockSvc.On("DescribeAutoScalingGroups", context.TODO(), describeInput("web-asg")).
		Return(nil, &smithy.GenericAPIError{Code: "AccessDenied", Message: "nope"})

	sleeps := 0
	client := newTestClient(mockSvc, &sleeps)

	cfg, err := client.FetchGroupConfig("web-asg")

	require.NoError(t, err)
	assert.Nil(t, cfg)
	assert.Zero(t, sleeps)
	assert.Len(t, mockSvc.Calls, 1)
}

// TestFetchGroupConfig_PolicyFetchFails verifies that a policy lookup
// failure is a hard error, unlike describe failures.
func TestFetchGroupConfig_PolicyFetchFails(t *testing.T) {
	mockSvc := &mockAutoscalingAPI{}
	mockSvc.On("DescribeAutoScalingGroups", context.TODO(), describeInput("web-asg")).
		Return(&autoscaling.DescribeAutoScalingGroupsOutput{
			AutoScalingGroups: []asgtypes.AutoScalingGroup{
				{AutoScalingGroupName: aws.String("web-asg")},
			},
		}, nil)
	mockSvc.On("DescribePolicies", context.TODO(), &autoscaling.DescribePoliciesInput{
		AutoScalingGroupName: aws.String("web-asg"),
	}).Return(nil, &smithy.GenericAPIError{Code: "InternalFailure", Message: "boom"})

	client := newTestClient(mockSvc, nil)

	cfg, err := client.FetchGroupConfig("web-asg")

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "scaling policies")
}

// TestFetchGroupConfig_ScheduledActionFetchFails verifies the same hard
// failure behavior for the scheduled-action lookup.
func TestFetchGroupConfig_ScheduledActionFetchFails(t *testing.T) {
	mockSvc := &mockAutoscalingAPI{}
	mockSvc.On("DescribeAutoScalingGroups", context.TODO(), describeInput("web-asg")).
		Return(&autoscaling.DescribeAutoScalingGroupsOutput{
			AutoScalingGroups: []asgtypes.AutoScalingGroup{
				{AutoScalingGroupName: aws.String("web-asg")},
			},
		}, nil)
	mockSvc.On("DescribePolicies", context.TODO(), &autoscaling.DescribePoliciesInput{
		AutoScalingGroupName: aws.String("web-asg"),
	}).Return(&autoscaling.DescribePoliciesOutput{}, nil)
	mockSvc.On("DescribeScheduledActions", context.TODO(), &autoscaling.DescribeScheduledActionsInput{
		AutoScalingGroupName: aws.String("web-asg"),
	}).Return(nil, &smithy.GenericAPIError{Code: "InternalFailure", Message: "boom"})

	client := newTestClient(mockSvc, nil)

	cfg, err := client.FetchGroupConfig("web-asg")

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "scheduled actions")
}

// TestFetchGroupConfig_DuplicateActionNames verifies last-wins keying for
// scheduled actions sharing a name.
func TestFetchGroupConfig_DuplicateActionNames(t *testing.T) {
	mockSvc := &mockAutoscalingAPI{}
	mockSvc.On("DescribeAutoScalingGroups", context.TODO(), describeInput("web-asg")).
		Return(&autoscaling.DescribeAutoScalingGroupsOutput{
			AutoScalingGroups: []asgtypes.AutoScalingGroup{
				{AutoScalingGroupName: aws.String("web-asg")},
			},
		}, nil)
	mockSvc.On("DescribePolicies", context.TODO(), &autoscaling.DescribePoliciesInput{
		AutoScalingGroupName: aws.String("web-asg"),
	}).Return(&autoscaling.DescribePoliciesOutput{}, nil)
	mockSvc.On("DescribeScheduledActions", context.TODO(), &autoscaling.DescribeScheduledActionsInput{
		AutoScalingGroupName: aws.String("web-asg"),
	}).Return(&autoscaling.DescribeScheduledActionsOutput{
		ScheduledUpdateGroupActions: []asgtypes.ScheduledUpdateGroupAction{
			{ScheduledActionName: aws.String("resize"), DesiredCapacity: aws.Int32(1)},
			{ScheduledActionName: aws.String("resize"), DesiredCapacity: aws.Int32(7)},
		},
	}, nil)

	client := newTestClient(mockSvc, nil)

	cfg, err := client.FetchGroupConfig("web-asg")

	require.NoError(t, err)
	require.NotNil(t, cfg)
	require.Len(t, cfg.ScheduledActions, 1)
	assert.Equal(t, 7, cfg.ScheduledActions["resize"].DesiredCapacity)
}

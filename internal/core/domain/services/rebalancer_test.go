package services_test

import (
	"fmt"
	"testing"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/vehicle"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type RebalancerTestSuite struct {
	suite.Suite
	calc       services.LoadCalculator
	rebalancer services.Rebalancer

	t1, t2, t3 *vehicle.Vehicle
	vehicles   []*vehicle.Vehicle
}

func TestRebalancerTestSuite(t *testing.T) {
	suite.Run(t, new(RebalancerTestSuite))
}

func (s *RebalancerTestSuite) SetupTest() {
	t := s.T()
	s.calc = newCalc(t)
	s.rebalancer = services.NewRebalancer(s.calc, discardLogger())
	s.t1 = newVehicle(t, "T1", 1000, vehicle.Available)
	s.t2 = newVehicle(t, "T2", 1000, vehicle.Available)
	s.t3 = newVehicle(t, "T3", 1000, vehicle.Unavailable)
	s.vehicles = []*vehicle.Vehicle{s.t3, s.t2, s.t1}
}

func (s *RebalancerTestSuite) rebalance(orders []*order.Order) services.RebalanceResult {
	result, err := s.rebalancer.Rebalance(orders, services.NewFleet(s.vehicles), today)
	s.Require().NoError(err)
	return result
}

func decisionOf(result services.RebalanceResult, o *order.Order) services.Decision {
	for _, d := range result.Decisions {
		if d.Order.IsEqual(o) {
			return d
		}
	}
	return services.Decision{}
}

func (s *RebalancerTestSuite) TestPartition() {
	t := s.T()
	o1 := newOrder(t, "PO-1", "C1", day(10), 600)
	o2 := newOrder(t, "PO-2", "C1", day(10), 300)
	o3 := newOrder(t, "PO-3", "C2", day(10), 500)
	undated := newOrder(t, "PO-4", "C1", nil, 10)
	later := newOrder(t, "PO-5", "C1", day(12), 10)
	noCluster := newOrder(t, "PO-6", "", day(10), 10)
	orders := []*order.Order{o1, o2, o3, undated, later, noCluster}

	result := s.rebalance(orders)

	s.Equal(services.Partition{
		Assigned:     []kernel.UUID{o1.ID(), o2.ID(), o3.ID()},
		OnHold:       []kernel.UUID{undated.ID()},
		Pending:      []kernel.UUID{later.ID()},
		Unassignable: []kernel.UUID{noCluster.ID()},
	}, result.Partition())

	s.True(decisionOf(result, o1).Vehicle.IsEqual(s.t1))
	s.True(decisionOf(result, o2).Vehicle.IsEqual(s.t1), "the bound vehicle gets the rest of its cluster")
	s.True(decisionOf(result, o3).Vehicle.IsEqual(s.t2), "T1 is locked to C1 for the date")
	s.Equal(services.ReasonNoDeliveryDate, decisionOf(result, undated).Reason)
	s.Equal(services.ReasonDatePriority, decisionOf(result, later).Reason)
	s.Equal(services.ReasonNoCluster, decisionOf(result, noCluster).Reason)
	s.Nil(result.EarliestExisting)

	s.Require().NoError(result.Apply())
	s.Equal(order.Assigned, o2.Status())
	s.Equal([]kernel.UUID{o1.ID(), o2.ID()}, s.t1.AssignedOrders())
	s.Equal(int64(900), s.t1.CurrentLoad())
	s.Empty(s.t3.AssignedOrders())
	s.Equal(order.OnHold, undated.Status())
	s.Equal(services.ReasonNoDeliveryDate.String(), undated.Reason())
	s.Equal(int64(600), o1.Load())
}

func (s *RebalancerTestSuite) TestUndatedIsOnHoldAndLaterDateIsPending() {
	t := s.T()
	s.vehicles = []*vehicle.Vehicle{s.t3}
	undated := newOrder(t, "PO-1", "C1", nil, 10)
	later := newOrder(t, "PO-2", "C1", day(20), 10)

	result := s.rebalance([]*order.Order{undated, later})

	s.Equal([]kernel.UUID{undated.ID()}, result.Partition().OnHold)
	s.Equal([]kernel.UUID{later.ID()}, result.Partition().Pending)
	s.Empty(result.Partition().Unassignable)
}

func (s *RebalancerTestSuite) TestEarliestExistingDateStaysCandidate() {
	t := s.T()
	previous := assignedTo(t, newOrder(t, "PO-1", "C1", day(8), 200), s.t1)
	sameDay := newOrder(t, "PO-2", "C3", day(8), 200)
	todays := newOrder(t, "PO-3", "C1", day(10), 200)
	later := newOrder(t, "PO-4", "C2", day(9), 200)

	result := s.rebalance([]*order.Order{previous, sameDay, todays, later})

	s.Require().NotNil(result.EarliestExisting)
	s.Equal(*day(8), *result.EarliestExisting)
	s.Equal(order.Assigned, decisionOf(result, previous).Status)
	s.Equal(order.Assigned, decisionOf(result, sameDay).Status)
	s.Equal(order.Pending, decisionOf(result, later).Status)

	d := decisionOf(result, todays)
	s.Equal(order.Pending, d.Status, "C1 is already served on the 8th")
	s.Equal(services.ReasonClusterOnOtherDate, d.Reason)
}

func (s *RebalancerTestSuite) TestUnassignableCarriesConstraintReason() {
	t := s.T()
	s.vehicles = []*vehicle.Vehicle{s.t1, s.t3}
	tooBig := newOrder(t, "PO-1", "C1", day(10), 1001)
	tooLong := newOrderOf(t, "PO-2", "C2", day(10), longProduct, 1)

	result := s.rebalance([]*order.Order{tooBig, tooLong})

	s.Equal(services.ReasonCapacity, decisionOf(result, tooBig).Reason)
	s.Equal(services.ReasonDimensions, decisionOf(result, tooLong).Reason)
	s.True(decisionOf(result, tooLong).Reason.IsConstraint())
	s.Len(result.Partition().Unassignable, 2)
}

func (s *RebalancerTestSuite) TestDriverConfirmedOrdersAreUntouched() {
	t := s.T()
	onRoad := assignedTo(t, newOrder(t, "PO-1", "C1", day(9), 100), s.t2)
	s.Require().NoError(onRoad.StartTransit())
	fresh := newOrder(t, "PO-2", "C1", day(10), 100)

	result := s.rebalance([]*order.Order{onRoad, fresh})
	s.Require().NoError(result.Apply())

	s.Len(result.Decisions, 1)
	s.Equal(order.InTransit, onRoad.Status())
	s.True(s.t2.Carries(onRoad.ID()), "orders on the road stay on their vehicle")
}

func (s *RebalancerTestSuite) TestIdempotent() {
	t := s.T()
	var orders []*order.Order
	clusters := []string{"C1", "C2", "C3", ""}
	dates := []*kernel.Date{day(10), day(10), day(11), nil, day(8)}
	for i := range 24 {
		orders = append(orders, newOrder(t, fmt.Sprintf("PO-%02d", i),
			clusters[i%len(clusters)], dates[i%len(dates)], 50+(i*37)%400))
	}
	assignedTo(t, orders[4], s.t3)

	first := s.rebalance(orders)
	s.Require().NoError(first.Apply())
	second := s.rebalance(orders)
	s.Require().NoError(second.Apply())
	third := s.rebalance(orders)

	s.Equal(first.Partition(), second.Partition())
	s.Equal(second.Partition(), third.Partition())
}

func (s *RebalancerTestSuite) TestFleetInvariantsHold() {
	t := s.T()
	big := newVehicle(t, "Big", 5000, vehicle.Available)
	s.vehicles = append(s.vehicles, big)

	var orders []*order.Order
	for i := range 40 {
		cluster := fmt.Sprintf("C%d", i%5)
		orders = append(orders, newOrder(t, fmt.Sprintf("PO-%02d", i), cluster, day(10), 100+(i*53)%700))
	}

	result := s.rebalance(orders)

	s.Require().NoError(services.ValidateCargo(result.Cargo))
	for _, c := range result.Cargo {
		s.LessOrEqual(c.Load(), c.Vehicle.Capacity(), c.Vehicle.Name())
		clustersOn := map[string]bool{}
		for _, item := range c.Items {
			cluster, _ := item.Order.Cluster()
			clustersOn[cluster] = true
		}
		s.LessOrEqual(len(clustersOn), 1, c.Vehicle.Name())
	}
}

func TestValidateCargo(t *testing.T) {
	v1 := newVehicle(t, "V1", 100, vehicle.Available)
	v2 := newVehicle(t, "V2", 100, vehicle.Available)
	a := newOrder(t, "PO-A", "C1", day(10), 80)
	b := newOrder(t, "PO-B", "C2", day(11), 80)

	t.Run("should pass a consistent assignment", func(t *testing.T) {
		err := services.ValidateCargo([]services.Cargo{
			{Vehicle: v1, Items: []services.CargoItem{{Order: a, Load: 80}}},
			{Vehicle: v2, Items: []services.CargoItem{{Order: b, Load: 80}}},
		})

		require.NoError(t, err)
	})

	t.Run("should list every violation", func(t *testing.T) {
		err := services.ValidateCargo([]services.Cargo{
			{Vehicle: v1, Items: []services.CargoItem{{Order: a, Load: 80}, {Order: b, Load: 80}}},
			{Vehicle: v2, Items: []services.CargoItem{{Order: a, Load: 80}}},
		})

		require.ErrorIs(t, err, errs.ErrRebalanceValidation)
		var verr *errs.RebalanceValidationError
		require.ErrorAs(t, err, &verr)
		assert.Len(t, verr.Violations, 4)
		assert.Contains(t, err.Error(), "vehicle V1 carries 2 delivery dates")
		assert.Contains(t, err.Error(), "vehicle V1 carries 2 clusters")
		assert.Contains(t, err.Error(), "vehicle V1 load 160 is above capacity 100")
		assert.Contains(t, err.Error(), "order PO-A is on vehicles V1 and V2")
	})
}

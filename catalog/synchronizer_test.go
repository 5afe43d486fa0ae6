// Copyright 2016 IBM Corporation
//
//   Licensed under the Apache License, Version 2.0 (the "License");
//   you may not use this file except in compliance with the License.
//   You may obtain a copy of the License at
//
//       http://www.apache.org/licenses/LICENSE-2.0
//
//   Unless required by applicable law or agreed to in writing, software
//   distributed under the License is distributed on an "AS IS" BASIS,
//   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//   See the License for the specific language governing permissions and
//   limitations under the License.

package catalog

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/queryfabric/queryd/connector"
	"github.com/queryfabric/queryd/discovery"
)

const (
	testServiceType = "queryd"
	testNode        = "test-node"
)

type SynchronizerSuite struct {
	suite.Suite

	announcer    discovery.Announcer
	synchronizer *Synchronizer
}

func TestSynchronizerSuite(t *testing.T) {
	suite.Run(t, new(SynchronizerSuite))
}

func (suite *SynchronizerSuite) SetupTest() {
	announcer, err := discovery.NewAnnouncer(&discovery.Config{
		BackendType: discovery.MemoryBackend,
		Node:        testNode,
	})
	if err != nil {
		panic(err)
	}
	suite.announcer = announcer
	suite.announcer.AddServiceAnnouncement(testServiceType, map[string]string{
		"node":               testNode,
		ConnectorIDsProperty: "",
	})
	suite.synchronizer = NewSynchronizer(suite.announcer, testServiceType)
}

func (suite *SynchronizerSuite) TearDownTest() {
	suite.announcer = nil
	suite.synchronizer = nil
}

func (suite *SynchronizerSuite) connectorIDs() string {
	for _, announcement := range suite.announcer.ServiceAnnouncements() {
		if announcement.Type == testServiceType {
			return announcement.Properties[ConnectorIDsProperty]
		}
	}
	return "<no announcement>"
}

func (suite *SynchronizerSuite) TestAddInsertsIdentifier() {
	err := suite.synchronizer.ApplyDelta(connector.ID("sales"), Add)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "sales", suite.connectorIDs())
}

func (suite *SynchronizerSuite) TestAddIsIdempotent() {
	_ = suite.synchronizer.ApplyDelta(connector.ID("sales"), Add)
	err := suite.synchronizer.ApplyDelta(connector.ID("sales"), Add)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "sales", suite.connectorIDs())
}

func (suite *SynchronizerSuite) TestRemoveErasesIdentifier() {
	_ = suite.synchronizer.ApplyDelta(connector.ID("sales"), Add)
	err := suite.synchronizer.ApplyDelta(connector.ID("sales"), Remove)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "", suite.connectorIDs())
}

func (suite *SynchronizerSuite) TestRemoveAbsentIsNoop() {
	_ = suite.synchronizer.ApplyDelta(connector.ID("sales"), Add)
	err := suite.synchronizer.ApplyDelta(connector.ID("absent"), Remove)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "sales", suite.connectorIDs())
}

func (suite *SynchronizerSuite) TestInsertionOrderPreserved() {
	_ = suite.synchronizer.ApplyDelta(connector.ID("a"), Add)
	_ = suite.synchronizer.ApplyDelta(connector.ID("b"), Add)
	_ = suite.synchronizer.ApplyDelta(connector.ID("c"), Add)
	_ = suite.synchronizer.ApplyDelta(connector.ID("b"), Remove)

	assert.Equal(suite.T(), "a,c", suite.connectorIDs())
}

func (suite *SynchronizerSuite) TestTokensTrimmedAndEmptyDropped() {
	// Seed a property written by another implementation, with spacing and empty tokens
	announcements := suite.announcer.ServiceAnnouncements()
	require.Len(suite.T(), announcements, 1)
	suite.announcer.RemoveServiceAnnouncement(announcements[0].ID)
	suite.announcer.AddServiceAnnouncement(testServiceType, map[string]string{
		ConnectorIDsProperty: " a , ,b,",
	})

	err := suite.synchronizer.ApplyDelta(connector.ID("c"), Add)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "a,b,c", suite.connectorIDs())
}

func (suite *SynchronizerSuite) TestOtherPropertiesPreserved() {
	err := suite.synchronizer.ApplyDelta(connector.ID("sales"), Add)
	require.NoError(suite.T(), err)

	announcements := suite.announcer.ServiceAnnouncements()
	require.Len(suite.T(), announcements, 1)
	assert.Equal(suite.T(), testNode, announcements[0].Properties["node"])
	assert.Equal(suite.T(), testServiceType, announcements[0].Type)
}

func (suite *SynchronizerSuite) TestAnnouncementReplacedWithFreshID() {
	before := suite.announcer.ServiceAnnouncements()
	require.Len(suite.T(), before, 1)

	err := suite.synchronizer.ApplyDelta(connector.ID("sales"), Add)
	require.NoError(suite.T(), err)

	after := suite.announcer.ServiceAnnouncements()
	require.Len(suite.T(), after, 1)
	assert.NotEqual(suite.T(), before[0].ID, after[0].ID)
}

func (suite *SynchronizerSuite) TestMissingAnnouncementFaults() {
	announcements := suite.announcer.ServiceAnnouncements()
	suite.announcer.RemoveServiceAnnouncement(announcements[0].ID)
	other := suite.announcer.AddServiceAnnouncement("replication", map[string]string{"port": "6100"})

	err := suite.synchronizer.ApplyDelta(connector.ID("sales"), Add)

	require.Error(suite.T(), err)
	assert.ErrorIs(suite.T(), err, ErrAnnouncementNotFound)
	// The message enumerates the announcements that were inspected
	assert.Contains(suite.T(), err.Error(), other.ID)
	assert.Contains(suite.T(), err.Error(), "replication")
}

type mockAnnouncer struct {
	mock.Mock
}

func (m *mockAnnouncer) ServiceAnnouncements() []*discovery.Announcement {
	args := m.Called()
	return args.Get(0).([]*discovery.Announcement)
}

func (m *mockAnnouncer) AddServiceAnnouncement(serviceType string, properties map[string]string) *discovery.Announcement {
	args := m.Called(serviceType, properties)
	return args.Get(0).(*discovery.Announcement)
}

func (m *mockAnnouncer) RemoveServiceAnnouncement(id string) {
	m.Called(id)
}

func (m *mockAnnouncer) ForceAnnounce() error {
	args := m.Called()
	return args.Error(0)
}

func (suite *SynchronizerSuite) TestApplyDeltaReplacesAndBroadcasts() {
	announcer := new(mockAnnouncer)
	announcer.On("ServiceAnnouncements").Return([]*discovery.Announcement{{
		ID:         "old-id",
		Type:       testServiceType,
		Properties: map[string]string{ConnectorIDsProperty: "sales"},
	}})
	announcer.On("RemoveServiceAnnouncement", "old-id").Return()
	announcer.On("AddServiceAnnouncement", testServiceType, map[string]string{
		ConnectorIDsProperty: "sales,events",
	}).Return(&discovery.Announcement{ID: "new-id", Type: testServiceType})
	announcer.On("ForceAnnounce").Return(nil)

	err := NewSynchronizer(announcer, testServiceType).ApplyDelta(connector.ID("events"), Add)

	require.NoError(suite.T(), err)
	announcer.AssertExpectations(suite.T())
}

func (suite *SynchronizerSuite) TestBroadcastFailurePropagates() {
	announcer := new(mockAnnouncer)
	announcer.On("ServiceAnnouncements").Return([]*discovery.Announcement{{
		ID:         "old-id",
		Type:       testServiceType,
		Properties: map[string]string{ConnectorIDsProperty: ""},
	}})
	announcer.On("RemoveServiceAnnouncement", "old-id").Return()
	announcer.On("AddServiceAnnouncement", testServiceType, mock.Anything).
		Return(&discovery.Announcement{ID: "new-id", Type: testServiceType})
	announcer.On("ForceAnnounce").Return(fmt.Errorf("backend unreachable"))

	err := NewSynchronizer(announcer, testServiceType).ApplyDelta(connector.ID("sales"), Add)

	assert.EqualError(suite.T(), err, "backend unreachable")
}

func (suite *SynchronizerSuite) TestConcurrentDeltasAreLinearized() {
	const writers = 16

	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func(i int) {
			defer wg.Done()
			_ = suite.synchronizer.ApplyDelta(connector.ID(fmt.Sprintf("catalog-%d", i)), Add)
		}(i)
	}
	wg.Wait()

	ids := splitConnectorIDs(suite.connectorIDs())
	assert.Len(suite.T(), ids.values, writers)
	for i := 0; i < writers; i++ {
		assert.True(suite.T(), ids.seen[fmt.Sprintf("catalog-%d", i)], "missing catalog-%d", i)
	}
}

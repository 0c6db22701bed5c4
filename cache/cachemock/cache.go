// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package cachemock provides a GoMock implementation of cache.Cache.
package cachemock

import (
	reflect "reflect"

	gomock "github.com/golang/mock/gomock"

	cache "github.com/ava-labs/burstcache/cache"
)

var _ cache.Cache[int, int] = (*Cache[int, int])(nil)

// Cache is a mock of Cache interface.
type Cache[K comparable, V any] struct {
	ctrl     *gomock.Controller
	recorder *CacheMockRecorder[K, V]
}

// CacheMockRecorder is the mock recorder for Cache.
type CacheMockRecorder[K comparable, V any] struct {
	mock *Cache[K, V]
}

// NewCache creates a new mock instance.
func NewCache[K comparable, V any](ctrl *gomock.Controller) *Cache[K, V] {
	mock := &Cache[K, V]{ctrl: ctrl}
	mock.recorder = &CacheMockRecorder[K, V]{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *Cache[K, V]) EXPECT() *CacheMockRecorder[K, V] {
	return m.recorder
}

// Name mocks base method.
func (m *Cache[K, V]) Name() string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Name")
	ret0, _ := ret[0].(string)
	return ret0
}

// Name indicates an expected call of Name.
func (mr *CacheMockRecorder[K, V]) Name() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Name", reflect.TypeOf((*Cache[K, V])(nil).Name))
}

// Configuration mocks base method.
func (m *Cache[K, V]) Configuration() cache.Configuration {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Configuration")
	ret0, _ := ret[0].(cache.Configuration)
	return ret0
}

// Configuration indicates an expected call of Configuration.
func (mr *CacheMockRecorder[K, V]) Configuration() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Configuration", reflect.TypeOf((*Cache[K, V])(nil).Configuration))
}

// Get mocks base method.
func (m *Cache[K, V]) Get(arg0 K) (V, bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", arg0)
	ret0, _ := ret[0].(V)
	ret1, _ := ret[1].(bool)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// Get indicates an expected call of Get.
func (mr *CacheMockRecorder[K, V]) Get(arg0 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*Cache[K, V])(nil).Get), arg0)
}

// GetAll mocks base method.
func (m *Cache[K, V]) GetAll(arg0 []K) (map[K]V, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetAll", arg0)
	ret0, _ := ret[0].(map[K]V)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetAll indicates an expected call of GetAll.
func (mr *CacheMockRecorder[K, V]) GetAll(arg0 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetAll", reflect.TypeOf((*Cache[K, V])(nil).GetAll), arg0)
}

// ContainsKey mocks base method.
func (m *Cache[K, V]) ContainsKey(arg0 K) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ContainsKey", arg0)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ContainsKey indicates an expected call of ContainsKey.
func (mr *CacheMockRecorder[K, V]) ContainsKey(arg0 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ContainsKey", reflect.TypeOf((*Cache[K, V])(nil).ContainsKey), arg0)
}

// Put mocks base method.
func (m *Cache[K, V]) Put(arg0 K, arg1 V) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Put", arg0, arg1)
	ret0, _ := ret[0].(error)
	return ret0
}

// Put indicates an expected call of Put.
func (mr *CacheMockRecorder[K, V]) Put(arg0, arg1 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Put", reflect.TypeOf((*Cache[K, V])(nil).Put), arg0, arg1)
}

// GetAndPut mocks base method.
func (m *Cache[K, V]) GetAndPut(arg0 K, arg1 V) (V, bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetAndPut", arg0, arg1)
	ret0, _ := ret[0].(V)
	ret1, _ := ret[1].(bool)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// GetAndPut indicates an expected call of GetAndPut.
func (mr *CacheMockRecorder[K, V]) GetAndPut(arg0, arg1 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetAndPut", reflect.TypeOf((*Cache[K, V])(nil).GetAndPut), arg0, arg1)
}

// PutAll mocks base method.
func (m *Cache[K, V]) PutAll(arg0 map[K]V) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PutAll", arg0)
	ret0, _ := ret[0].(error)
	return ret0
}

// PutAll indicates an expected call of PutAll.
func (mr *CacheMockRecorder[K, V]) PutAll(arg0 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PutAll", reflect.TypeOf((*Cache[K, V])(nil).PutAll), arg0)
}

// PutIfAbsent mocks base method.
func (m *Cache[K, V]) PutIfAbsent(arg0 K, arg1 V) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PutIfAbsent", arg0, arg1)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// PutIfAbsent indicates an expected call of PutIfAbsent.
func (mr *CacheMockRecorder[K, V]) PutIfAbsent(arg0, arg1 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PutIfAbsent", reflect.TypeOf((*Cache[K, V])(nil).PutIfAbsent), arg0, arg1)
}

// Remove mocks base method.
func (m *Cache[K, V]) Remove(arg0 K) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Remove", arg0)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Remove indicates an expected call of Remove.
func (mr *CacheMockRecorder[K, V]) Remove(arg0 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Remove", reflect.TypeOf((*Cache[K, V])(nil).Remove), arg0)
}

// GetAndRemove mocks base method.
func (m *Cache[K, V]) GetAndRemove(arg0 K) (V, bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetAndRemove", arg0)
	ret0, _ := ret[0].(V)
	ret1, _ := ret[1].(bool)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// GetAndRemove indicates an expected call of GetAndRemove.
func (mr *CacheMockRecorder[K, V]) GetAndRemove(arg0 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetAndRemove", reflect.TypeOf((*Cache[K, V])(nil).GetAndRemove), arg0)
}

// Replace mocks base method.
func (m *Cache[K, V]) Replace(arg0 K, arg1 V) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Replace", arg0, arg1)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Replace indicates an expected call of Replace.
func (mr *CacheMockRecorder[K, V]) Replace(arg0, arg1 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Replace", reflect.TypeOf((*Cache[K, V])(nil).Replace), arg0, arg1)
}

// GetAndReplace mocks base method.
func (m *Cache[K, V]) GetAndReplace(arg0 K, arg1 V) (V, bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetAndReplace", arg0, arg1)
	ret0, _ := ret[0].(V)
	ret1, _ := ret[1].(bool)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// GetAndReplace indicates an expected call of GetAndReplace.
func (mr *CacheMockRecorder[K, V]) GetAndReplace(arg0, arg1 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetAndReplace", reflect.TypeOf((*Cache[K, V])(nil).GetAndReplace), arg0, arg1)
}

// RemoveAll mocks base method.
func (m *Cache[K, V]) RemoveAll() error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RemoveAll")
	ret0, _ := ret[0].(error)
	return ret0
}

// RemoveAll indicates an expected call of RemoveAll.
func (mr *CacheMockRecorder[K, V]) RemoveAll() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RemoveAll", reflect.TypeOf((*Cache[K, V])(nil).RemoveAll))
}

// Clear mocks base method.
func (m *Cache[K, V]) Clear() error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Clear")
	ret0, _ := ret[0].(error)
	return ret0
}

// Clear indicates an expected call of Clear.
func (mr *CacheMockRecorder[K, V]) Clear() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Clear", reflect.TypeOf((*Cache[K, V])(nil).Clear))
}

// Iterator mocks base method.
func (m *Cache[K, V]) Iterator() cache.Iterator[K, V] {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Iterator")
	ret0, _ := ret[0].(cache.Iterator[K, V])
	return ret0
}

// Iterator indicates an expected call of Iterator.
func (mr *CacheMockRecorder[K, V]) Iterator() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Iterator", reflect.TypeOf((*Cache[K, V])(nil).Iterator))
}

// RegisterCreatedListener mocks base method.
func (m *Cache[K, V]) RegisterCreatedListener(arg0 cache.CreatedListener[K, V]) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RegisterCreatedListener", arg0)
	ret0, _ := ret[0].(error)
	return ret0
}

// RegisterCreatedListener indicates an expected call of RegisterCreatedListener.
func (mr *CacheMockRecorder[K, V]) RegisterCreatedListener(arg0 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RegisterCreatedListener", reflect.TypeOf((*Cache[K, V])(nil).RegisterCreatedListener), arg0)
}

// Invoke mocks base method.
func (m *Cache[K, V]) Invoke(arg0 K, arg1 cache.EntryProcessor[K, V]) (V, bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Invoke", arg0, arg1)
	ret0, _ := ret[0].(V)
	ret1, _ := ret[1].(bool)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// Invoke indicates an expected call of Invoke.
func (mr *CacheMockRecorder[K, V]) Invoke(arg0, arg1 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Invoke", reflect.TypeOf((*Cache[K, V])(nil).Invoke), arg0, arg1)
}

// LoadAll mocks base method.
func (m *Cache[K, V]) LoadAll(arg0 []K, arg1 bool) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LoadAll", arg0, arg1)
	ret0, _ := ret[0].(error)
	return ret0
}

// LoadAll indicates an expected call of LoadAll.
func (mr *CacheMockRecorder[K, V]) LoadAll(arg0, arg1 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LoadAll", reflect.TypeOf((*Cache[K, V])(nil).LoadAll), arg0, arg1)
}

// Unwrap mocks base method.
func (m *Cache[K, V]) Unwrap() (any, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Unwrap")
	ret0, _ := ret[0].(any)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Unwrap indicates an expected call of Unwrap.
func (mr *CacheMockRecorder[K, V]) Unwrap() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Unwrap", reflect.TypeOf((*Cache[K, V])(nil).Unwrap))
}

// Close mocks base method.
func (m *Cache[K, V]) Close() error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Close")
	ret0, _ := ret[0].(error)
	return ret0
}

// Close indicates an expected call of Close.
func (mr *CacheMockRecorder[K, V]) Close() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Close", reflect.TypeOf((*Cache[K, V])(nil).Close))
}

// IsClosed mocks base method.
func (m *Cache[K, V]) IsClosed() bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IsClosed")
	ret0, _ := ret[0].(bool)
	return ret0
}

// IsClosed indicates an expected call of IsClosed.
func (mr *CacheMockRecorder[K, V]) IsClosed() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IsClosed", reflect.TypeOf((*Cache[K, V])(nil).IsClosed))
}

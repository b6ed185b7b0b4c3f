package ecs

import "reflect"

// 本文件提供基于泛型的组件访问辅助函数。
// 相比 EntityManager 的 reflect.Type 接口，泛型版本调用端无需手写
// reflect.TypeOf，并且返回值已完成类型断言。

// AddComponent 为实体添加组件（泛型版本）
// T 通常是组件结构体的指针类型，如 *components.MowerComponent
func AddComponent[T any](em *EntityManager, id EntityID, component T) {
	em.AddComponent(id, component)
}

// GetComponent 获取实体的特定类型组件（泛型版本）
// 返回类型化的组件实例；实体不存在或缺少该组件时 ok 为 false
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	var zero T
	comp, ok := em.GetComponent(id, reflect.TypeOf(zero))
	if !ok {
		return zero, false
	}
	typed, ok := comp.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// HasComponent 检查实体是否拥有特定类型组件（泛型版本）
func HasComponent[T any](em *EntityManager, id EntityID) bool {
	var zero T
	return em.HasComponent(id, reflect.TypeOf(zero))
}

// RemoveComponent 从实体移除指定类型的组件（泛型版本）
func RemoveComponent[T any](em *EntityManager, id EntityID) {
	var zero T
	em.RemoveComponent(id, reflect.TypeOf(zero))
}

// GetEntitiesWith1 查询拥有指定单个组件类型的所有实体
func GetEntitiesWith1[A any](em *EntityManager) []EntityID {
	var a A
	return em.GetEntitiesWith(reflect.TypeOf(a))
}

// GetEntitiesWith2 查询同时拥有两个组件类型的所有实体
func GetEntitiesWith2[A, B any](em *EntityManager) []EntityID {
	var a A
	var b B
	return em.GetEntitiesWith(reflect.TypeOf(a), reflect.TypeOf(b))
}

// GetEntitiesWith3 查询同时拥有三个组件类型的所有实体
func GetEntitiesWith3[A, B, C any](em *EntityManager) []EntityID {
	var a A
	var b B
	var c C
	return em.GetEntitiesWith(reflect.TypeOf(a), reflect.TypeOf(b), reflect.TypeOf(c))
}

// Package editor, admin tablolarındaki form/onay penceresinin sonlu durum makinesidir.
//
// Durumlar:
//
//	closed ──OpenCreate──▶ open-for-create ──Close/Saved──▶ closed
//	closed ──OpenEdit(t)─▶ open-for-edit(t) ──Close/Saved──▶ closed
//	closed ──RequestDelete(t)─▶ confirming-delete(t) ──Confirm/Cancel──▶ closed
//
// Silme iki aşamalıdır: önce RequestDelete, sonra Confirm. Confirm, onay
// bekleyen bir hedef yoksa hata döner; böylece tek adımda silme imkansızdır.
package editor

import (
	"errors"
	"fmt"
	"sync"
)

// State, editörün durumu.
type State string

const (
	StateClosed           State = "closed"
	StateOpenForCreate    State = "open-for-create"
	StateOpenForEdit      State = "open-for-edit"
	StateConfirmingDelete State = "confirming-delete"
)

// ErrInvalidTransition, mevcut durumda izin verilmeyen bir geçiş denendiğinde döner.
var ErrInvalidTransition = errors.New("invalid editor transition")

// Snapshot, editörün dışa açılan anlık görüntüsü.
// Target, sadece open-for-edit ve confirming-delete durumlarında doludur.
type Snapshot struct {
	State  State  `json:"state"`
	Target string `json:"target,omitempty"`
}

// Editor, tek bir tablo için form/onay durumu. Sıfır değeri kapalı bir editördür.
type Editor struct {
	state  State
	target string
}

// Snapshot, mevcut durumu döner.
func (e *Editor) Snapshot() Snapshot {
	if e.state == "" {
		return Snapshot{State: StateClosed}
	}
	return Snapshot{State: e.state, Target: e.target}
}

// OpenCreate, boş formu açar. Sadece kapalıyken veya başka bir form açıkken geçerlidir;
// onay bekleyen bir silme varken form açılamaz.
func (e *Editor) OpenCreate() error {
	if e.state == StateConfirmingDelete {
		return fmt.Errorf("%w: delete confirmation pending", ErrInvalidTransition)
	}
	e.state, e.target = StateOpenForCreate, ""
	return nil
}

// OpenEdit, verilen kayıt için düzenleme formunu açar.
func (e *Editor) OpenEdit(target string) error {
	if target == "" {
		return fmt.Errorf("%w: empty target", ErrInvalidTransition)
	}
	if e.state == StateConfirmingDelete {
		return fmt.Errorf("%w: delete confirmation pending", ErrInvalidTransition)
	}
	e.state, e.target = StateOpenForEdit, target
	return nil
}

// Close, formu kapatır (vazgeç veya kaydetme sonrası). Onay penceresini kapatmaz;
// onun için Cancel kullanılır.
func (e *Editor) Close() error {
	if e.state == StateConfirmingDelete {
		return fmt.Errorf("%w: use cancel to dismiss delete confirmation", ErrInvalidTransition)
	}
	e.state, e.target = StateClosed, ""
	return nil
}

// RequestDelete, silme onayını açar. Açık bir form varsa kapatılır.
// Başka bir hedef için onay zaten bekliyorsa hedef değiştirilir.
func (e *Editor) RequestDelete(target string) error {
	if target == "" {
		return fmt.Errorf("%w: empty target", ErrInvalidTransition)
	}
	e.state, e.target = StateConfirmingDelete, target
	return nil
}

// Confirm, onay bekleyen hedefi döner ve editörü kapatır.
// Çağıran taraf bu hedefi siler.
func (e *Editor) Confirm() (string, error) {
	if e.state != StateConfirmingDelete {
		return "", fmt.Errorf("%w: no delete pending", ErrInvalidTransition)
	}
	target := e.target
	e.state, e.target = StateClosed, ""
	return target, nil
}

// Cancel, onay penceresini kapatır; hiçbir şey silinmez.
func (e *Editor) Cancel() error {
	if e.state != StateConfirmingDelete {
		return fmt.Errorf("%w: no delete pending", ErrInvalidTransition)
	}
	e.state, e.target = StateClosed, ""
	return nil
}

// Registry, (kullanıcı, tablo) başına bir Editor tutar.
// Her admin'in her tablo için kendi onay durumu vardır; iki admin birbirinin
// onay penceresini göremez ve onaylayamaz.
type Registry struct {
	mu      sync.Mutex
	editors map[key]*Editor
}

type key struct {
	owner string
	kind  string
}

// NewRegistry, boş bir registry oluşturur.
func NewRegistry() *Registry {
	return &Registry{editors: make(map[key]*Editor)}
}

// Do, (owner, kind) editörü üzerinde fn'i kilit altında çalıştırır.
// Editor yoksa kapalı olarak oluşturulur. fn dönünce editör kapalıysa
// kayıt silinir; registry sadece açık pencereleri tutar.
func (r *Registry) Do(owner, kind string, fn func(e *Editor) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := key{owner: owner, kind: kind}
	e, ok := r.editors[k]
	if !ok {
		e = &Editor{}
	}

	err := fn(e)

	if e.Snapshot().State == StateClosed {
		delete(r.editors, k)
	} else {
		r.editors[k] = e
	}
	return err
}

// Snapshot, (owner, kind) editörünün durumunu döner.
func (r *Registry) Snapshot(owner, kind string) Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.editors[key{owner: owner, kind: kind}]; ok {
		return e.Snapshot()
	}
	return Snapshot{State: StateClosed}
}

package postgres

import (
	"storefront/internal/domain/entity"
	"storefront/internal/infra/persistence/model"

	"github.com/ecodeclub/ekit/slice"
)

func toAddressDomain(data model.DeliveryAddressModel) entity.DeliveryAddress {
	return entity.DeliveryAddress{
		Provinsi:  data.Provinsi,
		Kabupaten: data.Kabupaten,
		Kecamatan: data.Kecamatan,
		Kelurahan: data.Kelurahan,
		Detail:    data.Detail,
	}
}

func fromAddressDomain(data entity.DeliveryAddress) model.DeliveryAddressModel {
	return model.DeliveryAddressModel{
		Provinsi:  data.Provinsi,
		Kabupaten: data.Kabupaten,
		Kecamatan: data.Kecamatan,
		Kelurahan: data.Kelurahan,
		Detail:    data.Detail,
	}
}

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	return &entity.Order{
		ID:              data.ID,
		OrderNumber:     data.OrderNumber,
		Status:          entity.OrderStatus(data.Status),
		DeliveryFee:     data.DeliveryFee,
		DeliveryAddress: toAddressDomain(data.DeliveryAddress),
		UserID:          data.UserID,
		Items: slice.Map(data.Items, func(_ int, item model.OrderItemModel) entity.OrderItem {
			return entity.OrderItem{
				ID:        item.ID,
				OrderID:   item.OrderID,
				ProductID: item.ProductID,
				Name:      item.Name,
				Price:     item.Price,
				Qty:       item.Qty,
			}
		}),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	return &model.OrderModel{
		ID:              data.ID,
		OrderNumber:     data.OrderNumber,
		Status:          data.Status.String(),
		DeliveryFee:     data.DeliveryFee,
		DeliveryAddress: fromAddressDomain(data.DeliveryAddress),
		UserID:          data.UserID,
		Items: slice.Map(data.Items, func(_ int, item entity.OrderItem) model.OrderItemModel {
			return model.OrderItemModel{
				ID:        item.ID,
				OrderID:   data.ID,
				ProductID: item.ProductID,
				Name:      item.Name,
				Price:     item.Price,
				Qty:       item.Qty,
			}
		}),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toInvoiceDomain(data *model.InvoiceModel) *entity.Invoice {
	if data == nil {
		return nil
	}

	return &entity.Invoice{
		ID:              data.ID,
		OrderID:         data.OrderID,
		OrderNumber:     data.OrderNumber,
		UserID:          data.UserID,
		SubTotal:        data.SubTotal,
		DeliveryFee:     data.DeliveryFee,
		Total:           data.Total,
		DeliveryAddress: toAddressDomain(data.DeliveryAddress),
		PaymentStatus:   entity.PaymentStatus(data.PaymentStatus),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromInvoiceDomain(data *entity.Invoice) *model.InvoiceModel {
	return &model.InvoiceModel{
		ID:              data.ID,
		OrderID:         data.OrderID,
		OrderNumber:     data.OrderNumber,
		UserID:          data.UserID,
		SubTotal:        data.SubTotal,
		DeliveryFee:     data.DeliveryFee,
		Total:           data.Total,
		DeliveryAddress: fromAddressDomain(data.DeliveryAddress),
		PaymentStatus:   data.PaymentStatus.String(),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func toUserDomain(data *model.UserModel) *entity.User {
	return &entity.User{
		ID:        data.ID,
		FullName:  data.FullName,
		Email:     data.Email,
		Role:      entity.Role(data.Role),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toProductDomain(_ int, data *model.ProductModel) *entity.Product {
	return &entity.Product{
		ID:        data.ID,
		Name:      data.Name,
		Price:     data.Price,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toSettlementRecordDomain(_ int, data *model.SettlementRecordModel) *entity.SettlementRecord {
	return &entity.SettlementRecord{
		ID:                data.ID,
		OrderKey:          data.OrderKey,
		TransactionStatus: data.TransactionStatus,
		FraudStatus:       data.FraudStatus,
		Outcome:           entity.SettlementOutcome(data.Outcome),
		Reason:            data.Reason,
		ReceivedAt:        data.ReceivedAt,
	}
}

func fromSettlementRecordDomain(data *entity.SettlementRecord) *model.SettlementRecordModel {
	return &model.SettlementRecordModel{
		ID:                data.ID,
		OrderKey:          data.OrderKey,
		TransactionStatus: data.TransactionStatus,
		FraudStatus:       data.FraudStatus,
		Outcome:           data.Outcome.String(),
		Reason:            data.Reason,
		ReceivedAt:        data.ReceivedAt,
	}
}
